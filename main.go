package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/InkwellLabs/inkwell-backend/internal/auth"
	"github.com/InkwellLabs/inkwell-backend/internal/blogs"
	"github.com/InkwellLabs/inkwell-backend/internal/config"
	"github.com/InkwellLabs/inkwell-backend/internal/db"
	"github.com/InkwellLabs/inkwell-backend/internal/middleware"
	"github.com/InkwellLabs/inkwell-backend/internal/storage"
	"github.com/InkwellLabs/inkwell-backend/internal/token"
)

const tokenValidity = 7 * 24 * time.Hour

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"Blog API is running!"}`))
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	gdb, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	auth.Init(gdb)
	blogs.Init(gdb)

	uploader, err := storage.NewS3Uploader(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to set up blob storage: ", err)
	}

	tokens := token.NewManager([]byte(cfg.JWTSecret), tokenValidity)

	users := auth.NewGormUserStore(gdb)
	guard := middleware.AuthMiddleware(tokens, users)

	authHandler := auth.NewHandler(users, tokens, uploader)
	blogHandler := blogs.NewHandler(blogs.NewGormBlogStore(gdb), users, uploader)

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/api/auth", auth.SetupRoutes(authHandler, guard))
	r.Mount("/api/blogs", blogs.SetupRoutes(blogHandler, guard))

	log.Printf("Server listening on port :%s...", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
