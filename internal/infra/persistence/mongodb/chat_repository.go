package mongodb

import (
	"context"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const chatCollection = "chats"

type chatDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	SenderID   string             `bson:"senderId"`
	ReceiverID string             `bson:"receiverId"`
	Messages   []messageDocument  `bson:"messages"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

type messageDocument struct {
	SenderID  string    `bson:"senderId"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
}

// chatRepository implements repository.ChatRepository on a MongoDB collection.
type chatRepository struct {
	collection *mongo.Collection
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *mongo.Database) repository.ChatRepository {
	return &chatRepository{collection: db.Collection(chatCollection)}
}

// FindBetween matches the pair in either direction.
func (repo *chatRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*entity.Chat, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": a.String(), "receiverId": b.String()},
		bson.M{"senderId": b.String(), "receiverId": a.String()},
	}}

	var doc chatDocument
	if err := repo.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrChatNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find chat")
	}

	return toChatDomain(&doc)
}

// Create inserts the conversation and fills in its generated ID.
func (repo *chatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	now := time.Now().UTC()
	if chat.CreatedAt.IsZero() {
		chat.CreatedAt = now
	}
	chat.UpdatedAt = now

	doc := fromChatDomain(chat)
	result, err := repo.collection.InsertOne(ctx, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		chat.ID = id.Hex()
	}

	return nil
}

// AppendMessage pushes the message in one atomic update.
func (repo *chatRepository) AppendMessage(ctx context.Context, chatID string, message entity.ChatMessage) error {
	id, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return repository.ErrChatNotFound
	}

	update := bson.M{
		"$push": bson.M{"messages": fromMessageDomain(message)},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := repo.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat message")
	}
	if result.MatchedCount == 0 {
		return repository.ErrChatNotFound
	}

	return nil
}

func toChatDomain(doc *chatDocument) (*entity.Chat, error) {
	senderID, err := uuid.Parse(doc.SenderID)
	if err != nil {
		return nil, errors.Wrap(err, "chat sender id")
	}
	receiverID, err := uuid.Parse(doc.ReceiverID)
	if err != nil {
		return nil, errors.Wrap(err, "chat receiver id")
	}

	messages := make([]entity.ChatMessage, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		messageSender, err := uuid.Parse(m.SenderID)
		if err != nil {
			return nil, errors.Wrap(err, "chat message sender id")
		}
		messages = append(messages, entity.ChatMessage{
			SenderID:  messageSender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}

	return &entity.Chat{
		ID:         doc.ID.Hex(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Messages:   messages,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}

func fromChatDomain(chat *entity.Chat) *chatDocument {
	messages := make([]messageDocument, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		messages = append(messages, fromMessageDomain(m))
	}

	return &chatDocument{
		SenderID:   chat.SenderID.String(),
		ReceiverID: chat.ReceiverID.String(),
		Messages:   messages,
		CreatedAt:  chat.CreatedAt,
		UpdatedAt:  chat.UpdatedAt,
	}
}

func fromMessageDomain(m entity.ChatMessage) messageDocument {
	return messageDocument{
		SenderID:  m.SenderID.String(),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
