package main

import (
	"context"
	"errors"
	"log"
	"time"

	httpadapter "kappaverse/internal/adapter/http"
	metricsinmem "kappaverse/internal/adapter/metrics/inmemory"
	gormrepo "kappaverse/internal/adapter/repo/gorm"
	memrepo "kappaverse/internal/adapter/repo/memory"
	"kappaverse/internal/adapter/scheduler"
	"kappaverse/internal/app/care"
	"kappaverse/internal/app/fishing"
	"kappaverse/internal/app/ports"
	"kappaverse/internal/app/register"
	"kappaverse/internal/app/replay"
	"kappaverse/internal/app/shop"
	"kappaverse/internal/app/status"
	"kappaverse/internal/app/tick"
	"kappaverse/internal/domain/kappa"
	"kappaverse/internal/platform/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const demoPlayerID = "demo-player"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rules := kappa.DefaultRules()
	rules.TZOffsetMinutes = cfg.TZOffsetMinutes
	life := kappa.LifecycleService{Rules: rules}

	stateRepo, eventRepo, txManager := mustBuildRepos(cfg, life)
	kpiRecorder := metricsinmem.NewRecorder()

	tickUC := tick.UseCase{
		TxManager: txManager,
		StateRepo: stateRepo,
		EventRepo: eventRepo,
		Metrics:   kpiRecorder,
		Life:      life,
		Rng:       kappa.SystemSource(),
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		RegisterUC: register.UseCase{TxManager: txManager, StateRepo: stateRepo, Life: life, Now: time.Now},
		StatusUC:   status.UseCase{StateRepo: stateRepo, Rules: rules, Now: time.Now},
		TickUC:     tickUC,
		CareUC: care.UseCase{
			TxManager: txManager, StateRepo: stateRepo, EventRepo: eventRepo,
			Metrics: kpiRecorder, Life: life, Now: time.Now,
		},
		FishingUC: fishing.UseCase{
			TxManager: txManager, StateRepo: stateRepo, EventRepo: eventRepo,
			Metrics: kpiRecorder, Life: life, Rng: kappa.SystemSource(), Now: time.Now,
		},
		ShopUC: shop.UseCase{
			TxManager: txManager, StateRepo: stateRepo, EventRepo: eventRepo,
			Metrics: kpiRecorder, Life: life, Now: time.Now,
		},
		ReplayUC: replay.UseCase{Events: eventRepo},
		KPI:      kpiRecorder,
	}

	loop := scheduler.Loop{Interval: cfg.TickInterval, Players: stateRepo, Tick: tickUC}
	go loop.Run(context.Background())

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("kappaverse server listening on %s (demo player: %s)", cfg.Addr, demoPlayerID)
	s.Spin()
}

func mustBuildRepos(cfg config.Config, life kappa.LifecycleService) (ports.PlayerStateRepository, ports.EventRepository, ports.TxManager) {
	if cfg.DatabaseDSN == "" {
		log.Println("KAPPAVERSE_DB_DSN not set, running with in-memory state")
		store := memrepo.NewStore()
		store.SeedState(life.NewInitialState(demoPlayerID, time.Now()))
		return memrepo.NewPlayerStateRepo(store), memrepo.NewEventRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	stateRepo := gormrepo.NewPlayerStateRepo(db)
	if _, err := stateRepo.GetByPlayerID(context.Background(), demoPlayerID); errors.Is(err, ports.ErrNotFound) {
		seed := life.NewInitialState(demoPlayerID, time.Now())
		if saveErr := stateRepo.SaveWithVersion(context.Background(), seed, 0); saveErr != nil {
			log.Fatalf("seed demo player: %v", saveErr)
		}
	} else if err != nil {
		log.Fatalf("load demo player: %v", err)
	}

	return stateRepo, gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}
