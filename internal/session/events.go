package session

// SoundEvent is an audio trigger emitted by the session for the host's audio
// layer. The session never plays audio itself.
type SoundEvent int

const (
	SoundFlap SoundEvent = iota
	SoundHit
	SoundMusicStart
	SoundMusicStop
)

// String returns a human-readable name for the event.
func (e SoundEvent) String() string {
	switch e {
	case SoundFlap:
		return "Flap"
	case SoundHit:
		return "Hit"
	case SoundMusicStart:
		return "MusicStart"
	case SoundMusicStop:
		return "MusicStop"
	default:
		return "Unknown"
	}
}

// emit queues an event for the next DrainEvents call.
func (s *Session) emit(e SoundEvent) {
	s.events = append(s.events, e)
}

// DrainEvents returns the events queued since the last call, oldest first,
// and clears the queue.
func (s *Session) DrainEvents() []SoundEvent {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
