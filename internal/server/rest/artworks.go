package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/artfolio/internal/common"
	"github.com/dmitrijs2005/artfolio/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleListArtworks(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		list []*models.Artwork
		err  error
	)
	switch {
	case c.Query("featured") == "true":
		list, err = s.artworks.Featured(ctx)
	case c.Query("category") != "":
		list, err = s.artworks.ByCategory(ctx, c.Query("category"))
	default:
		list, err = s.artworks.List(ctx)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "artworks": list})
}

func (s *Server) handleGetArtwork(c *gin.Context) {
	a, err := s.artworks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "artwork": a})
}

func (s *Server) handleRelatedArtworks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := s.artworks.Related(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "artworks": list})
}

func (s *Server) handleCreateArtwork(c *gin.Context) {
	var req artworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	a, err := s.artworks.Create(c.Request.Context(), req.model())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "artwork": a})
}

func (s *Server) handleUpdateArtwork(c *gin.Context) {
	var req artworkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	a, err := s.artworks.Update(c.Request.Context(), req.ID, req.update())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "artwork": a})
}

// handleDeleteArtwork accepts the id as a path parameter or as ?id=.
func (s *Server) handleDeleteArtwork(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		s.fail(c, common.ErrBadRequest)
		return
	}

	if err := s.artworks.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
