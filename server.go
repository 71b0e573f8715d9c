package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honekiti/portfolio/internal/chat"
	"github.com/honekiti/portfolio/internal/config"
	"github.com/honekiti/portfolio/internal/contact"
	"github.com/honekiti/portfolio/internal/profile"
	"github.com/honekiti/portfolio/internal/responder"
	"github.com/honekiti/portfolio/internal/store"
	"github.com/honekiti/portfolio/web"
)

// Server wires the page, chat, contact and admin routes together.
type Server struct {
	cfg       *config.Config
	profile   *profile.Profile
	responder *responder.Responder
	chat      *chat.Controller
	contact   *contact.Submitter
	store     *store.Store
	admin     *adminAuth
}

func newServer(cfg *config.Config, st *store.Store) *Server {
	p := profile.Default()
	r := responder.New(p, responder.WithRecorder(st))
	return &Server{
		cfg:       cfg,
		profile:   p,
		responder: r,
		chat:      chat.NewController(r, chat.WithDelayRange(cfg.Chat.MinDelay, cfg.Chat.MaxDelay)),
		contact:   contact.NewSubmitter(cfg.Contact.SubmitDelay),
		store:     st,
		admin:     newAdminAuth(cfg.Admin.Username, cfg.Admin.Password),
	}
}

func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	if s.cfg.Storage.TrackVisitors {
		r.Use(s.visitorTrackingMiddleware())
	}

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", web.Page{
			Brand:          Brand,
			Profile:        s.profile,
			Nav:            web.Nav,
			Theme:          themeFromRequest(c),
			QuickQuestions: chat.QuickQuestions,
			Footer:         Footer,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		if err := s.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/chat", s.handleChat)
	api.GET("/chat/quick-questions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"questions": chat.QuickQuestions})
	})

	r.GET("/ws/chat", func(c *gin.Context) {
		s.chat.ServeWebSocket(c.Writer, c.Request)
	})

	// HTMX contact form endpoint - returns a notification and the form
	r.POST("/contact", s.handleContact)

	r.POST("/theme/toggle", func(c *gin.Context) {
		next := themeFromRequest(c).Toggle()
		c.SetCookie(web.ThemeCookie, string(next), 365*24*3600, "/", "", false, true)
		c.Status(http.StatusNoContent)
	})

	s.setupAdminRoutes(r)
	return r, nil
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ex, err := s.chat.Ask(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// client went away during the typing pause
		c.Status(http.StatusServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (s *Server) handleContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		// htmx only swaps 2xx responses
		c.HTML(http.StatusOK, "contact-result.html", gin.H{
			"Notification": web.NewNotification(web.KindError, contact.ErrMissingFields.Error()),
			"Form":         form,
		})
		return
	}

	msg, err := s.contact.Submit(c.Request.Context(), form)
	switch {
	case errors.Is(err, contact.ErrMissingFields), errors.Is(err, contact.ErrInvalidEmail):
		c.HTML(http.StatusOK, "contact-result.html", gin.H{
			"Notification": web.NewNotification(web.KindError, err.Error()),
			"Form":         form,
		})
	case err != nil:
		log.Printf("Contact submission abandoned: %v", err)
	default:
		c.HTML(http.StatusOK, "contact-result.html", gin.H{
			"Notification": web.NewNotification(web.KindSuccess, msg),
			"Reset":        true,
		})
	}
}

func themeFromRequest(c *gin.Context) web.Theme {
	saved, _ := c.Cookie(web.ThemeCookie)
	return web.ResolveTheme(saved, c.GetHeader(web.PrefersColorSchemeHeader))
}
