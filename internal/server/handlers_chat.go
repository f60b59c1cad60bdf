package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astra-cloud/astra/internal/chat"
)

func (s *Server) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.chat.Respond(c.Request.Context(), req))
}

func (s *Server) GetChatSession(c *gin.Context) {
	id := c.Param("id")
	messages, ok := s.chat.Sessions().History(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": id, "messages": messages})
}

func (s *Server) DeleteChatSession(c *gin.Context) {
	if !s.chat.Sessions().Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
