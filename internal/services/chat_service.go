package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/foliochat/foliochat/internal/extractor"
	"github.com/foliochat/foliochat/internal/models"
	"github.com/foliochat/foliochat/internal/prompts"
	"github.com/foliochat/foliochat/internal/providers/llm"
	mongorepo "github.com/foliochat/foliochat/internal/repositories/mongo"
	"github.com/foliochat/foliochat/internal/storage"
	"github.com/foliochat/foliochat/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ChatService owns the chat lifecycle: creation, message exchange with
// context assembly, and deployment. Every chat-scoped operation re-checks
// existence before ownership; nothing here holds state between requests.
type ChatService interface {
	StartChat(ctx context.Context, caller models.CallerIdentity, title, description, filename string, resume []byte) (*models.Chat, *models.Message, error)
	ListChats(ctx context.Context, caller models.CallerIdentity) ([]models.ChatSummary, error)
	SendMessage(ctx context.Context, caller models.CallerIdentity, chatID, text string) (*models.Message, error)
	Deploy(ctx context.Context, caller models.CallerIdentity, chatID, content string) (string, error)
}

type chatService struct {
	chats    mongorepo.ChatRepository
	messages mongorepo.MessageRepository
	gen      llm.Provider
	store    storage.ObjectStore
	extract  func([]byte) string
	timeout  time.Duration // deadline for generation and publish calls
	log      *logrus.Logger
}

func NewChatService(
	chats mongorepo.ChatRepository,
	messages mongorepo.MessageRepository,
	gen llm.Provider,
	store storage.ObjectStore,
	extract func([]byte) string,
	timeout time.Duration,
	log *logrus.Logger,
) ChatService {
	if extract == nil {
		extract = extractor.Extract
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &chatService{
		chats:    chats,
		messages: messages,
		gen:      gen,
		store:    store,
		extract:  extract,
		timeout:  timeout,
		log:      log,
	}
}

func (s *chatService) StartChat(ctx context.Context, caller models.CallerIdentity, title, description, filename string, resume []byte) (*models.Chat, *models.Message, error) {
	const op = "ChatService.StartChat"

	if title == "" || len(resume) == 0 {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "title and resume are required", nil)
	}

	// Empty extraction is tolerated: a malformed or image-only resume still
	// gets a chat, just with an empty resume section in the prompt.
	resumeText := s.extract(resume)
	if resumeText == "" {
		s.log.WithField("user_id", caller.UserID).Warn("resume extraction yielded empty text")
	}

	key := resumeKey(caller.UserID, filename)
	resumeURL, err := s.put(ctx, key, "text/plain", resumeText)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("resume upload failed")
		return nil, nil, utils.E(utils.CodeUnavailable, op, "failed to store resume", err)
	}

	seedText, err := s.generate(ctx, prompts.Initial(description, resumeText), resumeURL)
	if err != nil {
		// no chat record exists yet, so a generation failure leaves nothing behind
		return nil, nil, s.genError(op, err)
	}

	chat := &models.Chat{
		ChatID:                uuid.NewString(),
		UserID:                caller.UserID,
		Title:                 title,
		AdditionalDescription: description,
		ResumeURL:             resumeURL,
		PageURL:               "",
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.chats.Insert(ctx, chat); err != nil {
		return nil, nil, utils.E(utils.CodeInternal, op, "failed to persist chat", err)
	}

	seed := &models.Message{
		MessageID: uuid.NewString(),
		ChatID:    chat.ChatID,
		Sender:    models.SenderBot,
		Text:      seedText,
		Timestamp: time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, seed); err != nil {
		// chat exists with zero messages: detectable, surfaced, not hidden
		s.log.WithError(err).WithField("chat_id", chat.ChatID).Error("seed message persist failed after chat creation")
		return nil, nil, utils.E(utils.CodeInternal, op, "chat created but initial message was not persisted", err)
	}

	s.log.WithFields(logrus.Fields{"chat_id": chat.ChatID, "user_id": caller.UserID}).Info("chat created")
	return chat, seed, nil
}

func (s *chatService) ListChats(ctx context.Context, caller models.CallerIdentity) ([]models.ChatSummary, error) {
	const op = "ChatService.ListChats"

	chats, err := s.chats.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list chats", err)
	}

	out := make([]models.ChatSummary, 0, len(chats))
	for _, c := range chats {
		summary := models.ChatSummary{
			ChatID:  c.ChatID,
			Title:   c.Title,
			PageURL: c.PageURL,
		}
		last, err := s.messages.LatestByChat(ctx, c.ChatID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to load latest message", err)
		}
		if last != nil {
			summary.LastMessage = last.Text
			summary.LastUpdated = last.Timestamp.Format(time.RFC3339)
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *chatService) SendMessage(ctx context.Context, caller models.CallerIdentity, chatID, text string) (*models.Message, error) {
	const op = "ChatService.SendMessage"

	if text == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message text is required", nil)
	}

	chat, err := s.authorizedChat(ctx, op, caller, chatID)
	if err != nil {
		return nil, err
	}

	userMsg := &models.Message{
		MessageID: uuid.NewString(),
		ChatID:    chat.ChatID,
		Sender:    models.SenderUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, userMsg); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist message", err)
	}

	// Context assembly: the ordered transcript, freshly read back (including
	// the message just appended), is the only conversational memory. It grows
	// with the chat; no truncation is applied.
	history, err := s.messages.ListByChat(ctx, chat.ChatID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load message history", err)
	}

	reply, err := s.generate(ctx, prompts.Conversation(history), chat.ResumeURL)
	if err != nil {
		// the user's message stays persisted; only the bot turn is missing
		return nil, s.genError(op, err)
	}

	botMsg := &models.Message{
		MessageID: uuid.NewString(),
		ChatID:    chat.ChatID,
		Sender:    models.SenderBot,
		Text:      reply,
		Timestamp: time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, botMsg); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist bot message", err)
	}
	return botMsg, nil
}

func (s *chatService) Deploy(ctx context.Context, caller models.CallerIdentity, chatID, content string) (string, error) {
	const op = "ChatService.Deploy"

	if content == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "content is required", nil)
	}

	chat, err := s.authorizedChat(ctx, op, caller, chatID)
	if err != nil {
		return "", err
	}

	// Key depends only on (user, chat): redeploys overwrite the same object
	// and yield an identical URL.
	key := deployKey(chat.UserID, chat.ChatID)
	pageURL, err := s.put(ctx, key, "text/html", content)
	if err != nil {
		s.log.WithError(err).WithField("chat_id", chat.ChatID).Error("page publish failed")
		return "", utils.E(utils.CodeUnavailable, op, "failed to publish page", err)
	}

	if err := s.chats.SetPageURL(ctx, chat.ChatID, pageURL); err != nil {
		return "", utils.E(utils.CodeInternal, op, "page published but chat update failed", err)
	}

	s.log.WithFields(logrus.Fields{"chat_id": chat.ChatID, "page_url": pageURL}).Info("chat deployed")
	return pageURL, nil
}

// authorizedChat loads a chat and enforces existence before ownership, so an
// unauthorized caller learns nothing beyond the 403 itself.
func (s *chatService) authorizedChat(ctx context.Context, op string, caller models.CallerIdentity, chatID string) (*models.Chat, error) {
	if chatID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "chat_id is required", nil)
	}
	chat, err := s.chats.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "chat not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load chat", err)
	}
	if chat.UserID != caller.UserID {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	return chat, nil
}

func (s *chatService) generate(ctx context.Context, prompt, resumeURL string) (string, error) {
	gctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.gen.Generate(gctx, prompt, resumeURL)
}

func (s *chatService) put(ctx context.Context, key, contentType, content string) (string, error) {
	pctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.Put(pctx, key, contentType, strings.NewReader(content))
}

func (s *chatService) genError(op string, err error) error {
	s.log.WithError(err).Error("generation call failed")
	if errors.Is(err, context.DeadlineExceeded) {
		return utils.E(utils.CodeTimeout, op, "generation timed out", err)
	}
	return utils.E(utils.CodeUnavailable, op, "generation failed", err)
}

func resumeKey(userID, filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = "resume.pdf"
	}
	return fmt.Sprintf("resumes/%s/%s/%s.txt", userID, uuid.NewString(), base)
}

func deployKey(userID, chatID string) string {
	return fmt.Sprintf("pages/%s/pages-%s/index.html", userID, chatID)
}
