package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/civicpay/civicpay/internal/config"
	"github.com/civicpay/civicpay/internal/gateway"
	"github.com/civicpay/civicpay/internal/ledger"
	"github.com/civicpay/civicpay/internal/logging"
	"github.com/civicpay/civicpay/internal/session"
	"github.com/civicpay/civicpay/internal/storage"

	_ "modernc.org/sqlite"
)

// App is the CivicPay CLI application. It owns the local store, the session
// and ledger managers, and the payment gateway used at checkout.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *storage.SQLiteStore
	sessions *session.Manager
	payments *ledger.Manager
	gateway  gateway.Gateway
	reader   *bufio.Reader
}

// NewApp opens the local database, restores any persisted session and payment
// history, and returns an App ready to Run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sessions := session.NewManager(store, log)
	payments := ledger.NewManager(store, sessions, log)

	sessions.Initialize(ctx)
	payments.Load(ctx)

	return &App{
		config:   c,
		log:      log,
		store:    store,
		sessions: sessions,
		payments: payments,
		gateway:  gateway.NewSimulated(c.GatewayDelay),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits. The database is
// closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	printlnFn(titleStyle.Render("Welcome to CivicPay (type 'help' for commands)"))
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) getStatus() string {
	u := a.sessions.CurrentUser()
	if u == nil {
		return ""
	}
	return "(" + u.Email + ")"
}
