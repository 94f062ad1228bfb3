package corpus

import "path/filepath"

// Session pairs one session's audio directory with the matching transcript
// directory and lazily discovers the participant pairs inside them.
type Session struct {
	audioDir      string
	transcriptDir string
	rules         Rules

	participants []*Participant
	loaded       bool
}

// NewSession constructs a session from its two directories. Discovery is
// deferred until Participants is first called.
func NewSession(audioDir, transcriptDir string, rules Rules) *Session {
	return &Session{audioDir: audioDir, transcriptDir: transcriptDir, rules: rules}
}

// Name returns the session's audio directory base name.
func (s *Session) Name() string {
	return filepath.Base(s.audioDir)
}

// AudioDir returns the session's audio directory.
func (s *Session) AudioDir() string { return s.audioDir }

// TranscriptDir returns the session's transcript directory.
func (s *Session) TranscriptDir() string { return s.transcriptDir }

// Participants returns the session's matched participants, sorted by
// directory name. Hidden directories are filtered and the result is computed
// once and cached, the same discipline applied at every level of the corpus.
// Participant names present on only one side are silently excluded.
func (s *Session) Participants() ([]*Participant, error) {
	if s.loaded {
		return s.participants, nil
	}

	audioNames, err := listSubdirNames(s.audioDir)
	if err != nil {
		return nil, err
	}
	transcriptNames, err := listSubdirNames(s.transcriptDir)
	if err != nil {
		return nil, err
	}

	common := intersect(audioNames, transcriptNames)
	participants := make([]*Participant, 0, len(common))
	for _, name := range common {
		participants = append(participants, NewParticipant(
			filepath.Join(s.audioDir, name),
			filepath.Join(s.transcriptDir, name),
			s.rules,
		))
	}

	s.participants = participants
	s.loaded = true
	return s.participants, nil
}
