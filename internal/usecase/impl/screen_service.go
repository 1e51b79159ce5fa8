package impl

import (
	"sync"

	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/domain/service"
)

// ScreenStore owns the screen state machine. Bootstrap and moderation write
// to it through unexported methods; the control surface reads and navigates
// through usecase.ScreenUsecase.
type ScreenStore struct {
	metrics service.MetricsRecorder

	mu    sync.RWMutex
	state entity.UIState
}

// NewScreenStore returns a store in the loading phase.
func NewScreenStore(metrics service.MetricsRecorder) *ScreenStore {
	return &ScreenStore{
		metrics: metrics,
		state:   entity.UIState{Phase: entity.PhaseLoading},
	}
}

// State returns a copy of the current screen state.
func (s *ScreenStore) State() entity.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyState(s.state)
}

// Dismiss moves error → loading and clears the message.
func (s *ScreenStore) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != entity.PhaseError {
		return domainerrors.ErrInvalidTransition.WithDetails("dismiss requires the error phase")
	}

	s.state.ErrorMessage = ""
	s.setPhaseLocked(entity.PhaseLoading)

	return nil
}

// Back moves ready → loading and releases the active channel.
func (s *ScreenStore) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != entity.PhaseReady {
		return domainerrors.ErrInvalidTransition.WithDetails("back requires the ready phase")
	}

	s.state.ActiveChannel = nil
	s.state.BanPrompt = nil
	s.setPhaseLocked(entity.PhaseLoading)

	return nil
}

// ClearStatus removes the transient status message.
func (s *ScreenStore) ClearStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = ""
}

func (s *ScreenStore) ready(channel *entity.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := *channel
	s.state.ActiveChannel = &ch
	s.state.ErrorMessage = ""
	s.setPhaseLocked(entity.PhaseReady)
}

func (s *ScreenStore) fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ErrorMessage = message
	s.state.ActiveChannel = nil
	s.state.BanPrompt = nil
	s.setPhaseLocked(entity.PhaseError)
}

func (s *ScreenStore) activeChannel() (*entity.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.Phase != entity.PhaseReady || s.state.ActiveChannel == nil {
		return nil, false
	}
	ch := *s.state.ActiveChannel

	return &ch, true
}

func (s *ScreenStore) setStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = status
}

func (s *ScreenStore) openBanPrompt(target entity.ChatUser) entity.BanPrompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.BanPrompt = &entity.BanPrompt{Target: target}

	return *s.state.BanPrompt
}

// setBanReason stores reason in the open prompt and returns a copy of it.
func (s *ScreenStore) setBanReason(reason string) (entity.BanPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.BanPrompt == nil {
		return entity.BanPrompt{}, domainerrors.ErrBanPromptNotOpen
	}
	s.state.BanPrompt.Reason = reason

	return *s.state.BanPrompt, nil
}

// failBanPrompt keeps the prompt open for target with the entered reason and
// surfaces message both on the prompt and as the status. A prompt that was
// closed or retargeted meanwhile is left alone; only the status is set.
func (s *ScreenStore) failBanPrompt(target entity.ChatUser, reason, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Status = message
	if s.state.BanPrompt == nil || s.state.BanPrompt.Target.ID != target.ID {
		return
	}
	s.state.BanPrompt.Reason = reason
	s.state.BanPrompt.Error = message
}

func (s *ScreenStore) closeBanPrompt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.BanPrompt = nil
}

func (s *ScreenStore) setPhaseLocked(phase entity.Phase) {
	s.state.Phase = phase
	if s.metrics != nil {
		s.metrics.RecordPhase(string(phase))
	}
}

func copyState(st entity.UIState) entity.UIState {
	out := st
	if st.ActiveChannel != nil {
		ch := *st.ActiveChannel
		out.ActiveChannel = &ch
	}
	if st.BanPrompt != nil {
		p := *st.BanPrompt
		out.BanPrompt = &p
	}

	return out
}
