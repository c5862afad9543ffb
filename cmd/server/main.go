package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"meowtopia/config"
	randomest "meowtopia/internal/adapter/estimator/random"
	httpadapter "meowtopia/internal/adapter/http"
	metricsinmem "meowtopia/internal/adapter/metrics/inmemory"
	bcryptpw "meowtopia/internal/adapter/password/bcrypt"
	gormrepo "meowtopia/internal/adapter/repo/gorm"
	memrepo "meowtopia/internal/adapter/repo/memory"
	jwttoken "meowtopia/internal/adapter/token/jwt"
	"meowtopia/internal/app/activity"
	"meowtopia/internal/app/analytics"
	"meowtopia/internal/app/auth"
	"meowtopia/internal/app/breeding"
	"meowtopia/internal/app/cats"
	"meowtopia/internal/app/customers"
	"meowtopia/internal/app/events"
	"meowtopia/internal/app/menu"
	"meowtopia/internal/app/orders"
	"meowtopia/internal/app/ports"
	"meowtopia/internal/app/settings"
	"meowtopia/internal/app/staffing"
	"meowtopia/internal/domain/cafe"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/logs"

	"github.com/cloudwego/hertz/pkg/app/server"
)

type repoSet struct {
	users     ports.UserRepository
	cats      ports.CatRepository
	items     ports.ItemRepository
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	staff     ports.StaffRepository
	settings  ports.SettingsRepository
	events    ports.EventRepository
	tx        ports.TxManager
}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logs.New(cfg.Env.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Error("auth.jwtSecret is required (set MEOWTOPIA_AUTH_JWTSECRET)")
		os.Exit(1)
	}

	repos, err := buildRepos(cfg, logger)
	if err != nil {
		logger.Error("build repositories", slog.Any("error", err))
		os.Exit(1)
	}

	issuer := jwttoken.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := bcryptpw.NewHasher(cfg.Auth.BcryptCost)
	kpiRecorder := metricsinmem.NewRecorder()

	seed := cfg.Estimator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	estimator := randomest.NewEstimator(seed, time.Now)

	h := httpadapter.Handler{
		RegisterUC: auth.RegisterUseCase{Users: repos.users, TxManager: repos.tx, Hasher: hasher, Tokens: issuer},
		LoginUC:    auth.LoginUseCase{Users: repos.users, TxManager: repos.tx, Hasher: hasher, Tokens: issuer},
		VerifyUC:   auth.VerifyUseCase{Users: repos.users, Tokens: issuer},
		ProfileUC:  auth.ProfileUseCase{Users: repos.users},

		CreateCatUC: cats.CreateUseCase{TxManager: repos.tx, Cats: repos.cats, Users: repos.users},
		ListCatsUC:  cats.ListUseCase{Cats: repos.cats},
		GetCatUC:    cats.GetUseCase{Cats: repos.cats},
		ActivityUC: activity.PerformUseCase{
			TxManager: repos.tx,
			Cats:      repos.cats,
			Users:     repos.users,
			Events:    repos.events,
			Metrics:   kpiRecorder,
			Service:   cattery.NewActivityService(),
		},
		BreedUC: breeding.BreedUseCase{
			TxManager: repos.tx,
			Cats:      repos.cats,
			Users:     repos.users,
			Events:    repos.events,
			Service:   cattery.BreedingService{},
		},
		HistoryUC: events.HistoryUseCase{Events: repos.events},

		CreateItemUC:  menu.CreateItemUseCase{TxManager: repos.tx, Items: repos.items},
		ListItemsUC:   menu.ListItemsUseCase{Items: repos.items},
		UpdateStockUC: menu.UpdateStockUseCase{TxManager: repos.tx, Items: repos.items},

		CreateOrderUC: orders.CreateUseCase{
			TxManager: repos.tx,
			Orders:    repos.orders,
			Items:     repos.items,
			Customers: repos.customers,
			Events:    repos.events,
			Metrics:   kpiRecorder,
			Service:   cafe.OrderService{},
		},
		ListOrdersUC:  orders.ListUseCase{Orders: repos.orders},
		UpdateOrderUC: orders.UpdateStatusUseCase{TxManager: repos.tx, Orders: repos.orders},

		HireStaffUC: staffing.HireUseCase{TxManager: repos.tx, Staff: repos.staff},
		ListStaffUC: staffing.ListUseCase{Staff: repos.staff},

		AddCustomerUC:   customers.AddUseCase{TxManager: repos.tx, Customers: repos.customers},
		ListCustomersUC: customers.ListUseCase{Customers: repos.customers},
		GetCustomerUC:   customers.GetUseCase{Customers: repos.customers},

		AnalyticsUC: analytics.SnapshotUseCase{
			Orders:    repos.orders,
			Items:     repos.items,
			Staff:     repos.staff,
			Estimator: estimator,
		},
		GetSettingsUC:    settings.GetUseCase{Settings: repos.settings},
		UpdateSettingsUC: settings.UpdateUseCase{TxManager: repos.tx, Settings: repos.settings},

		KPI: kpiRecorder,
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	logger.Info("meowtopia server listening",
		slog.String("addr", addr),
		slog.String("env", cfg.Env.Env),
	)
	s.Spin()
}

func buildRepos(cfg *config.Config, logger *slog.Logger) (repoSet, error) {
	if cfg.Database.DSN == "" {
		logger.Warn("no database dsn configured, using in-memory store")
		store := memrepo.NewStore()
		return repoSet{
			users:     memrepo.NewUserRepo(store),
			cats:      memrepo.NewCatRepo(store),
			items:     memrepo.NewItemRepo(store),
			orders:    memrepo.NewOrderRepo(store),
			customers: memrepo.NewCustomerRepo(store),
			staff:     memrepo.NewStaffRepo(store),
			settings:  memrepo.NewSettingsRepo(store),
			events:    memrepo.NewEventRepo(store),
			tx:        memrepo.NewTxManager(store),
		}, nil
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		return repoSet{}, err
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.Database.MigrationsDir); err != nil {
		return repoSet{}, err
	}
	return repoSet{
		users:     gormrepo.NewUserRepo(db),
		cats:      gormrepo.NewCatRepo(db),
		items:     gormrepo.NewItemRepo(db),
		orders:    gormrepo.NewOrderRepo(db),
		customers: gormrepo.NewCustomerRepo(db),
		staff:     gormrepo.NewStaffRepo(db),
		settings:  gormrepo.NewSettingsRepo(db),
		events:    gormrepo.NewEventRepo(db),
		tx:        gormrepo.NewTxManager(db),
	}, nil
}
