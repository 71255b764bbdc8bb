package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"feedback-coach/internal/app"
	"feedback-coach/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type WSHandler struct {
	service  *app.CoachService
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.CoachService, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type navigatePayload struct {
	Route string `json:"route"`
}

type hashPayload struct {
	Fragment string `json:"fragment"`
}

type labelPayload struct {
	Label string `json:"label"`
}

// gapPayload updates only the fields that are present.
type gapPayload struct {
	Subject      *string `json:"subject"`
	Task         *string `json:"task"`
	Standard     *string `json:"standard"`
	Behavior     *string `json:"behavior"`
	Consequences *string `json:"consequences"`
}

type keyPayload struct {
	Key string `json:"key"`
}

type stagePayload struct {
	StageID string `json:"stageId"`
}

type textPayload struct {
	Text string `json:"text"`
}

type cardPayload struct {
	CardID int `json:"cardId"`
	Option int `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

var errUnsupported = errors.New("unsupported message type")

// ServeWS upgrades HTTP requests to websockets and binds each connection to its own workspace.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "missing clientId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.logger.With(zap.String("conn", uuid.NewString()))
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ws, err := h.service.Open(ctx, clientID)
	if err != nil {
		log.Error("open workspace failed", zap.Error(err))
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	log.Info("workspace connected", zap.String("session", ws.SessionID()))

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Debug("ws write error", zap.Error(err))
				return
			}
		}
	}()

	push := func(msg outboundMessage[any]) {
		select {
		case send <- msg:
		case <-writerDone:
		case <-ctx.Done():
		}
	}
	pushState := func() {
		push(outboundMessage[any]{Type: "state", Payload: ws.View()})
	}
	pushError := func(err error) {
		push(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
	}
	ws.Observe(pushState)

	group, groupCtx := errgroup.WithContext(ctx)

	push(outboundMessage[any]{Type: "joined", Payload: ws.View()})

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}

		if request := aiRequest(ws, inbound.Type); request != nil {
			group.Go(func() error {
				if err := request(groupCtx); err != nil {
					pushError(err)
					return nil
				}
				pushState()
				return nil
			})
			continue
		}

		if err := apply(ws, inbound); err != nil {
			pushError(err)
			continue
		}
		pushState()
	}

	cancel()
	_ = group.Wait()
	close(send)
	<-writerDone
	log.Info("workspace disconnected")
}

// aiRequest returns the blocking gateway call for msgType, or nil for page actions.
func aiRequest(ws *app.Workspace, msgType string) func(context.Context) error {
	switch msgType {
	case "gap.analyze":
		return ws.AnalyzeGap
	case "discussion.suggest":
		return ws.SuggestQuestions
	case "coach.refine":
		return ws.RefineDraft
	}
	return nil
}

// apply runs one synchronous page action.
func apply(ws *app.Workspace, msg inboundMessage) error {
	switch msg.Type {
	case "navigate":
		var p navigatePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		ws.Navigate(domain.Route(p.Route))
	case "hash":
		var p hashPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		ws.HashChanged(p.Fragment)
	case "menu.toggle":
		ws.ToggleMenu()
	case "quiz.answer":
		var p labelPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		_, err := ws.SubmitQuizAnswer(domain.Label(p.Label))
		return err
	case "quiz.next":
		return ws.AdvanceQuiz()
	case "gap.update":
		var p gapPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return updateGap(ws, p)
	case "planning.toggle":
		var p keyPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return ws.ToggleFactor(p.Key)
	case "discussion.select":
		var p stagePayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return ws.SelectStage(p.StageID)
	case "discussion.next":
		ws.AdvanceStage()
	case "discussion.context":
		var p textPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		ws.SetStageContext(p.Text)
	case "theory.answer":
		var p cardPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		_, err := ws.AnswerCard(p.CardID, p.Option)
		return err
	case "theory.retry":
		var p cardPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		return ws.RetryCard(p.CardID)
	case "coach.toggle":
		ws.ToggleCoach()
	case "coach.draft":
		var p textPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		ws.SetCoachDraft(p.Text)
	default:
		return errUnsupported
	}
	return nil
}

func updateGap(ws *app.Workspace, p gapPayload) error {
	fields := []struct {
		field app.GapField
		value *string
	}{
		{app.FieldSubject, p.Subject},
		{app.FieldTask, p.Task},
		{app.FieldStandard, p.Standard},
		{app.FieldBehavior, p.Behavior},
		{app.FieldConsequences, p.Consequences},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := ws.UpdateGapField(f.field, *f.value); err != nil {
			return err
		}
	}
	return nil
}

func decode(msg inboundMessage, into any) error {
	if len(msg.Payload) == 0 {
		return errors.New("missing " + msg.Type + " payload")
	}
	if err := json.Unmarshal(msg.Payload, into); err != nil {
		return errors.New("invalid " + msg.Type + " payload")
	}
	return nil
}
