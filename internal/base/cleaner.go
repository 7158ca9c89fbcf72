package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/utils"
)

const (
	cleanerTimeout        = 10 * time.Second
	loggerShutdownTimeout = 3 * time.Second
)

// Cleaner runs registered shutdown callbacks in reverse registration order, exactly once
type Cleaner struct {
	cleaners       []global.Callable
	mu             sync.Mutex
	cleaning       bool
	once           sync.Once
	loggerShutdown global.Callable
	logger         log.LoggerInterface
	exit           func(code int)
}

func NewCleaner(logger log.LoggerInterface) *Cleaner {
	return &Cleaner{
		cleaners:       make([]global.Callable, 0),
		loggerShutdown: logger.ShutdownCallback(),
		logger:         logger,
		exit:           os.Exit,
	}
}

func (c *Cleaner) Add(callable global.Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		c.logger.Debug("Cleaner is already shutting down, ignoring new cleaner")
		return
	}
	c.cleaners = append(c.cleaners, callable)
	c.logger.DebugF("Adding cleaner #%d (%T)", len(c.cleaners), callable)
}

func (c *Cleaner) Clean() {
	c.once.Do(c.clean)
}

func (c *Cleaner) clean() {
	c.mu.Lock()
	c.cleaning = true
	cleanersCopy := make([]global.Callable, len(c.cleaners))
	copy(cleanersCopy, c.cleaners)
	c.mu.Unlock()

	c.logger.DebugF("Starting cleanup of %d registered functions", len(cleanersCopy))

	var errs []error
	utils.ReverseForEach(cleanersCopy, func(idx int, callback global.Callable) {
		c.logger.DebugF("Invoking cleaner #%d (%T)", idx+1, callback)
		timeoutCtx, cancelFunc := context.WithTimeout(context.Background(), cleanerTimeout)
		defer cancelFunc()
		if err := callback.Invoke(timeoutCtx); err != nil {
			c.logger.ErrorF("Cleaner #%d (%T) failed: %v", idx+1, callback, err)
			errs = append(errs, err)
		}
	})

	if len(errs) > 0 {
		c.logger.ErrorF("%d errors occurred during cleanup", len(errs))
	} else {
		c.logger.Debug("All cleaners executed successfully")
	}
	c.logger.Info("Cleanup finished, server offline")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), loggerShutdownTimeout)
	defer cancel()
	if err := c.loggerShutdown.Invoke(shutdownCtx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
	}
}

// Init cleans up and exits the process on SIGINT or SIGTERM
func (c *Cleaner) Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
		c.logger.Info("Received interrupt signal, shutting down")
		c.Clean()
		c.exit(0)
	}()
}
