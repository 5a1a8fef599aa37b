package router

import (
	"database/sql"
	"net/http"

	_ "animal-shelter/docs"
	mem "animal-shelter/internal/adapters/storage/memory"
	pg "animal-shelter/internal/adapters/storage/postgres"
	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/domain/walks"
	"animal-shelter/internal/middleware"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger   logger.Logger // default Nop
	Window   walks.Window  // zero value => DefaultWindow
	PageSize int           // <= 0 => animals.DefaultPageSize
}

// Services agrupa los services por módulo; main los usa también para el seed.
type Services struct {
	Users     *users.Service
	Animals   *animals.Service
	Walks     *walks.Service
	Adoptions *adoptions.Service
}

type repositories struct {
	users     users.Repository
	animals   animals.Repository
	types     animals.TypeRepository
	walks     walks.Repository
	adoptions adoptions.Repository
	uow       adoptions.UnitOfWork
}

func newRepositories(db *sql.DB) repositories {
	if db != nil {
		s := pg.NewStore(db)
		return repositories{
			users:     s.Users(),
			animals:   s.Animals(),
			types:     s.Animals(),
			walks:     s.Walks(),
			adoptions: s.Adoptions(),
			uow:       s,
		}
	}

	s := mem.NewStore()
	return repositories{
		users:     s.Users(),
		animals:   s.Animals(),
		types:     s.Animals(),
		walks:     s.Walks(),
		adoptions: s.Adoptions(),
		uow:       s,
	}
}

func BuildServices(opts Options) Services {
	log := opts.logger()
	repos := newRepositories(opts.DB)

	window := opts.Window
	if window == (walks.Window{}) {
		window = walks.DefaultWindow()
	}

	usersSvc := users.NewService(repos.users)
	animalsSvc := animals.NewService(repos.animals, repos.types, opts.PageSize)

	return Services{
		Users:     usersSvc,
		Animals:   animalsSvc,
		Walks:     walks.NewService(repos.walks, animalsSvc, window),
		Adoptions: adoptions.NewService(repos.adoptions, repos.uow, animalsSvc, usersSvc, log),
	}
}

func NewRouter(opts Options, svcs Services) http.Handler {
	log := opts.logger()
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, svcs.Users, log)
	animals.RegisterRoutes(r, svcs.Animals, log)
	walks.RegisterRoutes(r, svcs.Walks, log)
	adoptions.RegisterRoutes(r, svcs.Adoptions, log)

	// Staff
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.RequireStaff(svcs.Users))
		animals.RegisterAdminRoutes(ar, svcs.Animals, log)
		adoptions.RegisterAdminRoutes(ar, svcs.Adoptions, log)
	})

	return r
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.Nop()
	}
	return o.Logger
}
