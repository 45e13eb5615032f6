package webui_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sashabaranov/go-openai"
	"gorm.io/datatypes"

	"github.com/Sain-Biswas/gemini-bot/core/types"
	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
	"github.com/Sain-Biswas/gemini-bot/pkg/llm"
	"github.com/Sain-Biswas/gemini-bot/webui"
)

var _ = Describe("WebUI handlers", func() {
	var (
		app          *webui.App
		users        *fakeUsers
		chats        *fakeChats
		reservations *fakeReservations

		ownerToken    string
		intruderToken string
	)

	BeforeEach(func() {
		users = newFakeUsers()
		chats = newFakeChats()
		reservations = newFakeReservations()

		client := &llm.MockClient{
			CreateChatCompletionFunc: func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
				return openai.ChatCompletionResponse{
					Choices: []openai.ChatCompletionChoice{{
						Message: openai.ChatCompletionMessage{
							Role:    openai.ChatMessageRoleAssistant,
							Content: "Hello! Where would you like to fly?",
						},
					}},
				}, nil
			},
		}

		app = webui.NewApp(
			webui.WithClient(client),
			webui.WithModel("test-model"),
			webui.WithSystemPrompt("You are a flight booking assistant."),
			webui.WithAuthSecret(testSecret),
			webui.WithChatStore(chats),
			webui.WithReservationStore(reservations),
			webui.WithUserStore(users),
			webui.WithUsageStore(&fakeUsage{}),
		)

		ownerToken = signedToken(testSecret, "owner@example.com")
		intruderToken = signedToken(testSecret, "intruder@example.com")
	})

	do := func(method, target, token string, body io.Reader) *http.Response {
		req := httptest.NewRequest(method, target, body)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.AddCookie(&http.Cookie{Name: webui.SessionCookie, Value: token})
		}
		resp, err := app.Test(req)
		Expect(err).ToNot(HaveOccurred())
		return resp
	}

	readBody := func(resp *http.Response) string {
		b, err := io.ReadAll(resp.Body)
		Expect(err).ToNot(HaveOccurred())
		resp.Body.Close()
		return string(b)
	}

	seedChat := func(id string, owner uuid.UUID) {
		Expect(chats.Save(context.TODO(), &models.Chat{
			ID:       id,
			UserID:   owner,
			Messages: datatypes.JSON(`[{"role":"user","content":"Hi"}]`),
		})).To(Succeed())
	}

	Describe("session auth", func() {
		It("rejects requests without a token", func() {
			resp := do(http.MethodGet, "/history", "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(readBody(resp)).To(Equal("Unauthorized"))
		})

		It("rejects tokens signed with the wrong secret", func() {
			resp := do(http.MethodGet, "/history", signedToken("other-secret", "owner@example.com"), nil)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("accepts a bearer token when no cookie is present", func() {
			req := httptest.NewRequest(http.MethodGet, "/history", nil)
			req.Header.Set("Authorization", "Bearer "+ownerToken)
			resp, err := app.Test(req)
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})

		It("resolves the same email to the same user across requests", func() {
			Expect(do(http.MethodGet, "/history", ownerToken, nil).StatusCode).To(Equal(http.StatusOK))
			first := users.idFor("owner@example.com")
			Expect(do(http.MethodGet, "/history", ownerToken, nil).StatusCode).To(Equal(http.StatusOK))
			Expect(users.idFor("owner@example.com")).To(Equal(first))
		})
	})

	Describe("POST /chat", func() {
		chatBody := func(id string) io.Reader {
			payload := map[string]interface{}{
				"id": id,
				"messages": []map[string]string{
					{"role": "user", "content": "Hi"},
				},
			}
			b, _ := json.Marshal(payload)
			return bytes.NewReader(b)
		}

		It("rejects unauthenticated requests", func() {
			resp := do(http.MethodPost, "/chat", "", chatBody("abc123"))
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(chats.has("abc123")).To(BeFalse())
		})

		It("rejects a body without a chat id", func() {
			resp := do(http.MethodPost, "/chat", ownerToken, chatBody(""))
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("rejects a malformed body", func() {
			resp := do(http.MethodPost, "/chat", ownerToken, bytes.NewReader([]byte("{not json")))
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("streams events and persists the transcript", func() {
			resp := do(http.MethodPost, "/chat", ownerToken, chatBody("abc123"))
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(ContainSubstring("text/event-stream"))

			body := readBody(resp)
			Expect(body).To(ContainSubstring("event: connected"))
			Expect(body).To(ContainSubstring("event: message"))
			Expect(body).To(ContainSubstring("event: done"))
			Expect(body).To(ContainSubstring("Where would you like to fly"))

			saved, err := chats.Get(context.TODO(), "abc123")
			Expect(err).ToNot(HaveOccurred())
			Expect(saved.UserID).To(Equal(users.idFor("owner@example.com")))

			var transcript types.Messages
			Expect(json.Unmarshal(saved.Messages, &transcript)).To(Succeed())
			Expect(transcript).To(HaveLen(2))
		})
	})

	Describe("GET /chat", func() {
		It("returns 404 without an id", func() {
			resp := do(http.MethodGet, "/chat", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 404 without an id even when unauthenticated", func() {
			resp := do(http.MethodGet, "/chat", "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 404 for an unknown id", func() {
			resp := do(http.MethodGet, "/chat?id=missing", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("hides another user's chat", func() {
			seedChat("abc123", users.idFor("owner@example.com"))
			resp := do(http.MethodGet, "/chat?id=abc123", intruderToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("returns the transcript to its owner", func() {
			seedChat("abc123", users.idFor("owner@example.com"))
			resp := do(http.MethodGet, "/chat?id=abc123", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var chat models.Chat
			Expect(json.Unmarshal([]byte(readBody(resp)), &chat)).To(Succeed())
			Expect(chat.ID).To(Equal("abc123"))
		})
	})

	Describe("GET /history", func() {
		It("lists only the caller's chats", func() {
			seedChat("mine-1", users.idFor("owner@example.com"))
			seedChat("mine-2", users.idFor("owner@example.com"))
			seedChat("theirs", users.idFor("intruder@example.com"))

			resp := do(http.MethodGet, "/history", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var list []models.Chat
			Expect(json.Unmarshal([]byte(readBody(resp)), &list)).To(Succeed())
			Expect(list).To(HaveLen(2))
			for _, chat := range list {
				Expect(chat.ID).To(HavePrefix("mine-"))
			}
		})
	})

	Describe("DELETE /chat", func() {
		It("returns 404 without an id", func() {
			resp := do(http.MethodDelete, "/chat", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("returns 404 without an id even when unauthenticated", func() {
			resp := do(http.MethodDelete, "/chat", "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(readBody(resp)).To(Equal("Not Found"))
		})

		It("returns 404 for an unknown id", func() {
			resp := do(http.MethodDelete, "/chat?id=missing", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("refuses to delete another user's chat", func() {
			seedChat("abc123", users.idFor("owner@example.com"))
			resp := do(http.MethodDelete, "/chat?id=abc123", intruderToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(chats.has("abc123")).To(BeTrue())
		})

		It("deletes the owner's chat", func() {
			seedChat("abc123", users.idFor("owner@example.com"))
			resp := do(http.MethodDelete, "/chat?id=abc123", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(readBody(resp)).To(Equal("Chat deleted"))
			Expect(chats.has("abc123")).To(BeFalse())
		})
	})

	Describe("reservation endpoints", func() {
		var reservationID uuid.UUID

		BeforeEach(func() {
			reservationID = uuid.New()
			Expect(reservations.Create(context.TODO(), &models.Reservation{
				ID:      reservationID,
				UserID:  users.idFor("owner@example.com"),
				Details: datatypes.JSON(`{"flightNumber":"AI202"}`),
			})).To(Succeed())
		})

		It("returns 404 for a malformed id", func() {
			resp := do(http.MethodGet, "/reservation?id=not-a-uuid", ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("hides another user's reservation", func() {
			resp := do(http.MethodGet, "/reservation?id="+reservationID.String(), intruderToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("returns the reservation to its owner", func() {
			resp := do(http.MethodGet, "/reservation?id="+reservationID.String(), ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var r models.Reservation
			Expect(json.Unmarshal([]byte(readBody(resp)), &r)).To(Succeed())
			Expect(r.ID).To(Equal(reservationID))
			Expect(r.HasCompletedPayment).To(BeFalse())
		})

		It("completes payment for the owner", func() {
			resp := do(http.MethodPatch, "/reservation?id="+reservationID.String(), ownerToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(readBody(resp)).To(ContainSubstring(`"status":"ok"`))

			row, err := reservations.Get(context.TODO(), reservationID)
			Expect(err).ToNot(HaveOccurred())
			Expect(row.HasCompletedPayment).To(BeTrue())
		})

		It("completes payment idempotently", func() {
			first := do(http.MethodPatch, "/reservation?id="+reservationID.String(), ownerToken, nil)
			Expect(first.StatusCode).To(Equal(http.StatusOK))

			second := do(http.MethodPatch, "/reservation?id="+reservationID.String(), ownerToken, nil)
			Expect(second.StatusCode).To(Equal(http.StatusOK))
			Expect(readBody(second)).To(ContainSubstring(`"status":"ok"`))

			row, err := reservations.Get(context.TODO(), reservationID)
			Expect(err).ToNot(HaveOccurred())
			Expect(row.HasCompletedPayment).To(BeTrue())
		})

		It("refuses to complete payment for another user", func() {
			resp := do(http.MethodPatch, "/reservation?id="+reservationID.String(), intruderToken, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))

			row, err := reservations.Get(context.TODO(), reservationID)
			Expect(err).ToNot(HaveOccurred())
			Expect(row.HasCompletedPayment).To(BeFalse())
		})
	})
})
