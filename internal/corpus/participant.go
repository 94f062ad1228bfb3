package corpus

import (
	"path/filepath"
	"strings"
)

// Participant pairs one participant's audio directory with the matching
// transcript directory and lazily discovers the record pairs inside them.
type Participant struct {
	audioDir      string
	transcriptDir string
	rules         Rules

	records []*Record
	loaded  bool
}

// NewParticipant constructs a participant from its two directories. Discovery
// is deferred until Records is first called.
func NewParticipant(audioDir, transcriptDir string, rules Rules) *Participant {
	return &Participant{audioDir: audioDir, transcriptDir: transcriptDir, rules: rules}
}

// Name returns the first whitespace-delimited token of the transcript
// directory's base name. Transcript folders carry trailing annotations
// ("Nut01 (redo)") that are not part of the participant identity.
func (p *Participant) Name() string {
	base := filepath.Base(p.transcriptDir)
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return base
	}
	return fields[0]
}

// AudioDir returns the participant's audio directory.
func (p *Participant) AudioDir() string { return p.audioDir }

// TranscriptDir returns the participant's transcript directory.
func (p *Participant) TranscriptDir() string { return p.transcriptDir }

// Records returns the participant's matched audio/transcript pairs, sorted by
// basename. The listing is computed once and cached for the participant's
// lifetime, including the empty result. Hidden files never match; audio files
// containing the exclusion substring are dropped before pairing; basenames
// present on only one side are silently excluded.
func (p *Participant) Records() ([]*Record, error) {
	if p.loaded {
		return p.records, nil
	}

	audioNames, err := listFileBasenames(p.audioDir, p.rules.ExcludePattern)
	if err != nil {
		return nil, err
	}
	transcriptNames, err := listFileBasenames(p.transcriptDir, "")
	if err != nil {
		return nil, err
	}

	common := intersect(audioNames, transcriptNames)
	records := make([]*Record, 0, len(common))
	for _, base := range common {
		records = append(records, NewRecord(
			filepath.Join(p.audioDir, base+p.rules.AudioExt),
			filepath.Join(p.transcriptDir, base+p.rules.TranscriptExt),
		))
	}

	p.records = records
	p.loaded = true
	return p.records, nil
}
