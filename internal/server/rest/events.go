package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/gin-gonic/gin"
)

// handleListEvents serves ?view=upcoming|past|featured; anything else
// returns all events, latest start first.
func (s *Server) handleListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		list []*models.Event
		err  error
	)
	switch c.Query("view") {
	case "upcoming":
		list, err = s.events.Upcoming(ctx)
	case "past":
		list, err = s.events.Past(ctx)
	case "featured":
		limit, _ := strconv.Atoi(c.Query("limit"))
		list, err = s.events.Featured(ctx, limit)
	case "":
		list, err = s.events.List(ctx)
	default:
		err = common.ErrBadRequest
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "events": list})
}

func (s *Server) handleGetEvent(c *gin.Context) {
	e, err := s.events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": e})
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	e, err := s.events.Create(c.Request.Context(), req.model(), req.AdditionalImages)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "event": e})
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	var req eventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	e, err := s.events.Update(c.Request.Context(), c.Param("id"), req.update(), req.NewImages)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "event": e})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	if err := s.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDeleteEventImage(c *gin.Context) {
	if err := s.events.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
