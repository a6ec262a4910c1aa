package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blogem/contact-book/config"
	"github.com/blogem/contact-book/controllers"
	"github.com/blogem/contact-book/database"
	"github.com/blogem/contact-book/logging"
	appmiddleware "github.com/blogem/contact-book/middleware"
	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/repositories"
	"github.com/blogem/contact-book/services"
)

var (
	configPath string
	auditLimit int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "contact-book",
	Short: "Contact Book - contact list web UI and REST API",
	Long: `Contact Book serves a browser table of contacts and a JSON REST API
backed by an in-memory list or a JSON file.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log.Level, cfg.Log.Development)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Append the contacts of a JSON array file to the store",
	Long: `Reads a JSON array of contacts and appends each one to the configured
store. Every imported contact gets a freshly assigned id.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print every contact as a JSON array",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending audit log migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the most recent audit log entries",
	Args:  cobra.NoArgs,
	RunE:  runAudit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file (default $CONTACTS_CONFIG)")
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "number of entries to show")

	rootCmd.AddCommand(serveCmd, importCmd, exportCmd, migrateCmd, auditCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles everything a command needs
type app struct {
	auditDB     *sql.DB
	repos       *repositories.Repositories
	services    *services.Services
	controllers *controllers.Controllers
}

// newApp wires repositories, services and controllers from the configuration
func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	if cfg.Audit.Enabled {
		db, err := database.InitializeDatabase(cfg.Audit.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize audit database: %w", err)
		}
		a.auditDB = db
	}

	repos, err := repositories.NewRepositories(repositories.Options{
		Backend:    cfg.Store.Backend,
		Path:       cfg.Store.Path,
		IDStrategy: cfg.Store.IDStrategy,
		AuditDB:    a.auditDB,
		Logger:     logger,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	a.repos = repos
	a.services = services.NewServices(repos)
	a.controllers = controllers.NewControllers(a.services, cfg.UI.PageSize, logger)
	return a, nil
}

// Close releases the audit database
func (a *app) Close() error {
	if a.auditDB != nil {
		return a.auditDB.Close()
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := setupRouter(a, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("🚀 Contact Book starting on port %s\n", cfg.Server.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Server.Port)
	if cfg.Store.Backend == repositories.BackendJSON {
		fmt.Printf("🗃️  Contacts: %s\n", cfg.Store.Path)
	} else {
		fmt.Printf("🗃️  Contacts: in memory\n")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	imported, err := a.services.Contacts.ImportContacts(cmd.Context(), contacts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d contacts\n", imported)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	contacts, err := a.services.Contacts.GetAllContacts(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(contacts)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := database.OpenDB(cfg.Audit.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := database.RunMigrations(db)
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Database is up to date")
		return nil
	}
	for _, version := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "Applied migration: %s\n", version)
	}
	return nil
}

func runAudit(cmd *cobra.Command, args []string) error {
	db, err := database.InitializeDatabase(cfg.Audit.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := repositories.NewAuditRepository(db).ListRecent(cmd.Context(), auditLimit)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-6s %-30s %-15s %s\n",
			e.Timestamp.Format(time.RFC3339), e.Method, e.Path, e.IPAddress, e.Payload)
	}
	return nil
}

// setupRouter configures all routes
func setupRouter(a *app, cfg *config.Config, logger *zap.Logger) (*chi.Mux, error) {
	ctrl := a.controllers
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(appmiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Session middleware, used for flash messages in the UI
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     cfg.Session.CookieName,
		Secure:         cfg.Session.Secure,
		Gclifetime:     cfg.Session.Lifetime,
		Maxlifetime:    cfg.Session.Lifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	audit := appmiddleware.AuditLogger(a.repos.Audit, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, models.HealthResponse{Status: "healthy", Service: "contact-book"})
	})

	// REST API
	r.Route("/contacts", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Use(audit)

		r.Get("/", ctrl.ContactsAPI.List)
		r.Post("/", ctrl.ContactsAPI.Create)
		r.Get("/{id}", ctrl.ContactsAPI.Get)
		r.Put("/{id}", ctrl.ContactsAPI.Update)
		r.Delete("/{id}", ctrl.ContactsAPI.Delete)
	})

	// Browser UI
	r.Group(func(r chi.Router) {
		r.Use(sessionHandler)
		r.Use(audit)

		r.Get("/", ctrl.Contacts.Index)
		r.Route("/ui/contacts", func(r chi.Router) {
			r.Get("/new", ctrl.Contacts.New)
			r.Post("/", ctrl.Contacts.Create)
			r.Get("/{id}/edit", ctrl.Contacts.Edit)
			r.Post("/{id}", ctrl.Contacts.Update)
			r.Post("/{id}/delete", ctrl.Contacts.Delete)
		})
	})

	return r, nil
}
