package coach

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/gymcoach/internal/apperr"
	"github.com/2beens/gymcoach/internal/gymstats/training"
)

type ProposalType string

const (
	TypeReplaceExercise   ProposalType = "replace_exercise"
	TypeAdjustVolume      ProposalType = "adjust_volume"
	TypeAddExercise       ProposalType = "add_exercise"
	TypeDeloadRecommended ProposalType = "deload_recommended"
)

// Proposal is one suggested plan change. The set of implementations is closed.
type Proposal interface {
	Type() ProposalType
	Validate() error
	isProposal()
}

type ReplaceExercise struct {
	OldExercise string `json:"old_exercise"`
	NewExercise string `json:"new_exercise"`
	Reason      string `json:"reason"`
}

type AdjustVolume struct {
	Exercise string  `json:"exercise"`
	OldSets  *int    `json:"old_sets"`
	NewSets  *int    `json:"new_sets"`
	OldReps  *string `json:"old_reps"`
	NewReps  *string `json:"new_reps"`
	Reason   string  `json:"reason"`
}

type AddExercise struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"`
	Reason   string `json:"reason"`
}

type DeloadRecommended struct {
	Reason string `json:"reason"`
}

func (ReplaceExercise) Type() ProposalType   { return TypeReplaceExercise }
func (AdjustVolume) Type() ProposalType      { return TypeAdjustVolume }
func (AddExercise) Type() ProposalType       { return TypeAddExercise }
func (DeloadRecommended) Type() ProposalType { return TypeDeloadRecommended }

func (ReplaceExercise) isProposal()   {}
func (AdjustVolume) isProposal()      {}
func (AddExercise) isProposal()       {}
func (DeloadRecommended) isProposal() {}

func (p ReplaceExercise) Validate() error {
	if strings.TrimSpace(p.OldExercise) == "" || strings.TrimSpace(p.NewExercise) == "" {
		return apperr.New(apperr.KindLLMSchema, "replace_exercise: old_exercise and new_exercise are required")
	}
	return nil
}

func (p AdjustVolume) Validate() error {
	if strings.TrimSpace(p.Exercise) == "" {
		return apperr.New(apperr.KindLLMSchema, "adjust_volume: exercise is required")
	}
	if p.NewSets == nil && p.NewReps == nil {
		return apperr.New(apperr.KindLLMSchema, "adjust_volume: new_sets or new_reps is required")
	}
	if p.NewSets != nil && !training.ValidSets(*p.NewSets) {
		return apperr.Newf(apperr.KindLLMSchema, "adjust_volume: new_sets %d not in [%d,%d]", *p.NewSets, training.MinTargetSets, training.MaxTargetSets)
	}
	if p.NewReps != nil && !training.ValidReps(*p.NewReps) {
		return apperr.Newf(apperr.KindLLMSchema, "adjust_volume: invalid new_reps %q", *p.NewReps)
	}
	return nil
}

func (p AddExercise) Validate() error {
	if strings.TrimSpace(p.Exercise) == "" {
		return apperr.New(apperr.KindLLMSchema, "add_exercise: exercise is required")
	}
	if !training.ValidSets(p.Sets) {
		return apperr.Newf(apperr.KindLLMSchema, "add_exercise: sets %d not in [%d,%d]", p.Sets, training.MinTargetSets, training.MaxTargetSets)
	}
	if !training.ValidReps(p.Reps) {
		return apperr.Newf(apperr.KindLLMSchema, "add_exercise: invalid reps %q", p.Reps)
	}
	return nil
}

func (p DeloadRecommended) Validate() error { return nil }

func (p ReplaceExercise) MarshalJSON() ([]byte, error) {
	type plain ReplaceExercise
	return marshalTagged(p.Type(), plain(p))
}

func (p AdjustVolume) MarshalJSON() ([]byte, error) {
	type plain AdjustVolume
	return marshalTagged(p.Type(), plain(p))
}

func (p AddExercise) MarshalJSON() ([]byte, error) {
	type plain AddExercise
	return marshalTagged(p.Type(), plain(p))
}

func (p DeloadRecommended) MarshalJSON() ([]byte, error) {
	type plain DeloadRecommended
	return marshalTagged(p.Type(), plain(p))
}

// marshalTagged prepends the "type" discriminator to the JSON object of v.
func marshalTagged(t ProposalType, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tag, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(tag)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// Proposals decodes a JSON array of tagged proposals. An unknown or missing
// discriminator fails the whole array; field values are checked by Validate.
type Proposals []Proposal

func (ps *Proposals) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return apperr.Wrap(apperr.KindLLMSchema, err, "optimizations must be an array")
	}

	out := make(Proposals, 0, len(raw))
	for i, r := range raw {
		p, err := DecodeProposal(r)
		if err != nil {
			return apperr.Wrap(apperr.KindLLMSchema, err, fmt.Sprintf("optimization %d", i))
		}
		out = append(out, p)
	}
	*ps = out
	return nil
}

// Validate checks every proposal and reports the first failure.
func (ps Proposals) Validate() error {
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			return apperr.Wrap(apperr.KindLLMSchema, err, fmt.Sprintf("optimization %d", i))
		}
	}
	return nil
}

func DecodeProposal(b []byte) (Proposal, error) {
	var head struct {
		Type *ProposalType `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	if head.Type == nil {
		return nil, fmt.Errorf("missing type")
	}

	switch *head.Type {
	case TypeReplaceExercise:
		return decodeAs[ReplaceExercise](b)
	case TypeAdjustVolume:
		return decodeAs[AdjustVolume](b)
	case TypeAddExercise:
		return decodeAs[AddExercise](b)
	case TypeDeloadRecommended:
		return decodeAs[DeloadRecommended](b)
	default:
		return nil, fmt.Errorf("unknown type %q", *head.Type)
	}
}

func decodeAs[T Proposal](b []byte) (Proposal, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
