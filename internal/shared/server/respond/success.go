package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessBody is the standard success envelope: flag, human message, payload.
type SuccessBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success sends a 200 response wrapped in the success envelope.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, SuccessBody{Success: true, Message: message, Data: data})
}

// Created sends a 201 response wrapped in the success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessBody{Success: true, Message: message, Data: data})
}
