package api

import (
	"encoding/base64"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/cartfulapp/cartful-backend/dto"
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/usecases"
)

func handleVoiceCommand(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.VoiceCommandBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		result, err := uc.VoiceUsecase.ParseVoiceCommand(c.Request.Context(),
			dto.AdaptVoiceCommandRequest(body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptVoiceCommandResponse(result))
	}
}

func handleSpeakText(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.SpeakBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		audio, err := uc.VoiceUsecase.SpeakText(c.Request.Context(), body.Text)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.SpeakResponse{
			Audio:    base64.StdEncoding.EncodeToString(audio.Data),
			MimeType: audio.MimeType,
		})
	}
}
