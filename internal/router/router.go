package router

import (
	"net/http"

	_ "genotrack/docs"
	mem "genotrack/internal/adapters/storage/memory"
	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/patients"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/domain/vocabulary"
	"genotrack/internal/middleware"
	"genotrack/internal/platform/logger"
	"genotrack/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Storage agrupa los repos por agregado; lo implementan memory.Store y sqlstore.Store.
type Storage interface {
	Patients() patients.Repository
	Genomes() genomes.Repository
	Phenotypes() phenotypes.Repository
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Logger     logger.Logger
	Vocabulary *vocabulary.Vocabulary

	// Opcional: si viene nil, in-memory.
	Storage Storage

	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = vocabulary.MustDefault()
	}
	store := opts.Storage
	if store == nil {
		store = mem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/vocabulary", vocabularyHandler(vocab))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	patientsSvc := patients.NewService(store.Patients(), store.Genomes(), store.Phenotypes(), log)
	genomesSvc := genomes.NewService(store.Genomes(), patientsSvc, vocab, log)
	phenotypesSvc := phenotypes.NewService(store.Phenotypes(), patientsSvc, vocab, log)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc, vocab, log)
	genomes.RegisterRoutes(r, genomesSvc, log)
	phenotypes.RegisterRoutes(r, phenotypesSvc, vocab, log)

	return r
}
