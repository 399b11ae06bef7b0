package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartfulapp/cartful-backend/usecases"
)

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases, auth Authentication) *http.Server {
	addRoutes(router, auth, uc)

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: conf.DefaultTimeout,
		ReadTimeout:  conf.DefaultTimeout,
		Handler:      router,
	}
}
