// Package server runs the development HTTP server: static site content,
// the footer partial, and a small JSON surface describing the site.
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"segue/pkg/site"
)

type Server struct {
	e    *echo.Echo
	site *site.Site
}

// New builds the server over a loaded site.
func New(s *site.Site) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())

	srv := &Server{e: e, site: s}

	e.Static("/", s.Dir())

	group := e.Group("/api")
	group.GET("/locales", srv.getLocales)
	group.GET("/pages/:locale", srv.getPages)
	group.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return srv
}

// Handler exposes the HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Serve runs the server on the listener until it fails or ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := http.Server{
		Handler: s.e,
	}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	if err := srv.Serve(ln); err != nil && ctx.Err() == nil {
		slog.Error("Failed to start server", "error", err)
		return err
	}

	return nil
}

func (s *Server) getLocales(c echo.Context) error {
	return c.JSON(http.StatusOK, s.site.Locales())
}

func (s *Server) getPages(c echo.Context) error {
	locale := c.Param("locale")
	if !s.site.HasLocale(locale) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown locale: "+locale)
	}

	slugs, err := s.site.Pages(locale)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, slugs)
}

// Listen opens the TCP listener for addr.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	return lc.Listen(ctx, "tcp", addr)
}
