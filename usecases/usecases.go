package usecases

import (
	"github.com/cartfulapp/cartful-backend/infra"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/usecases/ordering"
	"github.com/cartfulapp/cartful-backend/usecases/voice"
)

// Usecases wires the repositories into the long-lived usecase singletons.
// Several of them carry process-local state (the monotonic order generator,
// the backfill in-flight guard), so they are built once at startup and shared
// by every request. Subscriptions are the exception: they are scoped to one
// client session and built per streaming connection.
type Usecases struct {
	Repositories repositories.Repositories

	ListUsecase     *ListUsecase
	ItemUsecase     *ItemUsecase
	BulkUsecase     *BulkUsecase
	BackfillUsecase *BackfillUsecase
	VoiceUsecase    *voice.VoiceUsecase
}

func NewUsecases(repos repositories.Repositories, voiceConfig infra.VoiceAgentConfiguration) Usecases {
	orderKeys := ordering.NewGenerator(repos.Clock)

	listUsecase := NewListUsecase(repos.ListRepository, orderKeys)
	itemUsecase := NewItemUsecase(repos.ItemRepository, orderKeys)
	bulkUsecase := NewBulkUsecase(repos.ItemRepository, repos.BulkRepository, repos.ListRepository, listUsecase)
	backfillUsecase := NewBackfillUsecase(repos.ListRepository, repos.ItemRepository, repos.BulkRepository)

	voiceUsecase := voice.NewVoiceUsecase(
		repos.SpeechRepository,
		voice.NewLlmInterpreter(voiceConfig),
		voice.NewExecutor(listUsecase, itemUsecase, bulkUsecase),
	)

	return Usecases{
		Repositories:    repos,
		ListUsecase:     listUsecase,
		ItemUsecase:     itemUsecase,
		BulkUsecase:     bulkUsecase,
		BackfillUsecase: backfillUsecase,
		VoiceUsecase:    voiceUsecase,
	}
}

// NewSessionSubscription builds a subscription manager scoped to one client
// session, so the one-items-subscription rule applies per connection rather
// than per process. The backfill engine behind it stays shared: its in-flight
// guard is what keeps concurrent sessions from repairing the same scope twice.
func (uc Usecases) NewSessionSubscription() *SubscriptionUsecase {
	return NewSubscriptionUsecase(
		uc.Repositories.ListRepository,
		uc.Repositories.ItemRepository,
		uc.BackfillUsecase,
	)
}
