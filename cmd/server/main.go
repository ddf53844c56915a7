package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Mshel/falke-snake/internal/config"
	"github.com/Mshel/falke-snake/internal/game"
	"github.com/Mshel/falke-snake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

// connectionLimiter caps concurrent sessions per remote IP.
type connectionLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
}

func newConnectionLimiter(limit int) *connectionLimiter {
	return &connectionLimiter{
		counts: make(map[string]int),
		limit:  limit,
	}
}

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

// acquire reserves a slot for ip and returns the count including it.
func (l *connectionLimiter) acquire(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts[ip] >= l.limit {
		return l.counts[ip] + 1, false
	}
	l.counts[ip]++
	return l.counts[ip], true
}

func (l *connectionLimiter) release(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[ip]--
	if l.counts[ip] <= 0 {
		delete(l.counts, ip)
		return 0
	}
	return l.counts[ip]
}

func (l *connectionLimiter) Middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)

		count, ok := l.acquire(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count, "current_limit", l.limit)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", count, l.limit)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", l.limit)
		next(s)
		log.Info("Connection closed and counter decremented", "ip", ip, "count_after", l.release(ip))
	}
}

// gameSession ties one SSH session to the loop goroutine of its game.
type gameSession struct {
	cancel context.CancelFunc
	done   chan error
}

type gameSessionKey struct{}

type gameServer struct {
	conf *config.Config
}

func (gs *gameServer) viewHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	logger := log.Default().With("remote", getIP(sshSession), "user", sshSession.User())
	gameManager := game.NewGameManager(gs.conf.GameOptions(logger)...)

	ctx, cancel := context.WithCancel(sshSession.Context())
	session := &gameSession{cancel: cancel, done: make(chan error, 1)}
	sshSession.Context().SetValue(gameSessionKey{}, session)

	controllerModel := ui.NewControllerModel(gameManager, pty.Window.Width, pty.Window.Height)
	go func() {
		session.done <- gameManager.StartGameLoop(ctx)
	}()

	return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
}

// exitStatusMiddleware waits for the session's game loop once the program is gone and
// closes the session with a failure status when the snake collided.
func exitStatusMiddleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		next(s)

		session, ok := s.Context().Value(gameSessionKey{}).(*gameSession)
		if !ok {
			return
		}
		session.cancel()
		if err := <-session.done; errors.Is(err, game.ErrCollision) {
			wish.Fatalln(s, err)
		}
	}
}

func main() {
	conf, err := config.Load(os.Getenv("SNAKE_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	log.SetLevel(conf.Level())

	gs := &gameServer{conf: conf}
	limiter := newConnectionLimiter(conf.Server.MaxConnectionsPerIP)

	sshServer, serverCreateErr := wish.NewServer(
		wish.WithAddress(conf.Server.Addr()),
		wish.WithHostKeyPath(conf.Server.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(gs.viewHandler),
			exitStatusMiddleware,
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.Middleware,
		),
	)
	if serverCreateErr != nil {
		log.Fatal("Failed to create ssh server", "error", serverCreateErr)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "addr", conf.Server.Addr())
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}
