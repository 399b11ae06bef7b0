package repositories

import (
	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/genai"

	"github.com/cartfulapp/cartful-backend/repositories/clock"
)

// Repositories bundles every data-access dependency behind interfaces, so the
// usecase layer never sees a concrete client.
type Repositories struct {
	ListRepository          ListRepository
	ItemRepository          ItemRepository
	BulkRepository          BulkRepository
	SpeechRepository        SpeechRepository
	FirebaseTokenRepository *FirebaseTokenRepository
	Clock                   clock.Clock
}

type SpeechModels struct {
	TranscriptionModel string
	TTSModel           string
	TTSVoice           string
}

func NewRepositories(
	firestoreClient *firestore.Client,
	firebaseAuth *auth.Client,
	genaiClient *genai.Client,
	speechModels SpeechModels,
) Repositories {
	c := clock.New()
	return Repositories{
		ListRepository:          NewListRepositoryFirestore(firestoreClient, c),
		ItemRepository:          NewItemRepositoryFirestore(firestoreClient, c),
		BulkRepository:          NewBulkRepositoryFirestore(firestoreClient, c),
		SpeechRepository:        NewSpeechRepositoryGenai(genaiClient, speechModels.TranscriptionModel, speechModels.TTSModel, speechModels.TTSVoice),
		FirebaseTokenRepository: NewFirebaseTokenRepository(firebaseAuth),
		Clock:                   c,
	}
}
