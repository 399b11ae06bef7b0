package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/cartfulapp/cartful-backend/api"
	"github.com/cartfulapp/cartful-backend/infra"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/usecases"
	"github.com/cartfulapp/cartful-backend/utils"
)

func runServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "cartful-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		CartfulAppUrl:  utils.GetEnv("CARTFUL_APP_URL", ""),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 60)) * time.Second,
	}
	projectId := utils.GetRequiredEnv[string]("GOOGLE_CLOUD_PROJECT")

	voiceConfig := infra.VoiceAgentConfiguration{
		ProviderType: infra.LlmProviderType(utils.GetEnv("VOICE_PROVIDER", string(infra.LlmProviderTypeAIStudio))),
		URL:          utils.GetEnv("VOICE_PROVIDER_URL", ""),
		APIKey:       utils.GetEnv("VOICE_PROVIDER_API_KEY", ""),
		Project:      utils.GetEnv("VOICE_PROVIDER_PROJECT", ""),
		Location:     utils.GetEnv("VOICE_PROVIDER_LOCATION", ""),

		IntentModel:        utils.GetEnv("VOICE_INTENT_MODEL", "gemini-2.0-flash"),
		TranscriptionModel: utils.GetEnv("VOICE_TRANSCRIPTION_MODEL", "gemini-2.0-flash"),
		TTSModel:           utils.GetEnv("VOICE_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		TTSVoice:           utils.GetEnv("VOICE_TTS_VOICE", "Kore"),
	}

	logger := utils.NewLogger(apiConfig.Env)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	repos := repositories.NewRepositories(
		infra.InitializeFirestore(ctx, projectId),
		infra.InitializeFirebase(ctx, projectId),
		infra.InitializeGenaiClient(ctx, voiceConfig),
		repositories.SpeechModels{
			TranscriptionModel: voiceConfig.TranscriptionModel,
			TTSModel:           voiceConfig.TTSModel,
			TTSVoice:           voiceConfig.TTSVoice,
		},
	)
	uc := usecases.NewUsecases(repos, voiceConfig)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	auth := api.NewAuthentication(repos.FirebaseTokenRepository)
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err)
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}

func main() {
	if err := runServer(); err != nil {
		os.Exit(1)
	}
}
