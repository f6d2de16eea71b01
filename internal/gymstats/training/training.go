package training

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/gymcoach/internal/apperr"
)

const (
	DefaultCycleLength        = 4
	MinCycleLength            = 2
	MaxCycleLength            = 12
	DefaultDeloadVolumeFactor = 0.8
	DefaultDeloadWeightFactor = 0.9
	DefaultDeloadRPETarget    = 7.0
)

// Standards are 1RM thresholds in kg at an 80 kg reference body weight.
type Standards struct {
	Beginner     Weight `json:"beginner"`
	Intermediate Weight `json:"intermediate"`
	Advanced     Weight `json:"advanced"`
	Elite        Weight `json:"elite"`
}

type Exercise struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	MuscleGroup      MuscleGroup   `json:"muscleGroup"`
	HelperMuscles    []MuscleGroup `json:"helperMuscles,omitempty"`
	MovementType     MovementType  `json:"movementType"`
	WeightType       WeightType    `json:"weightType"`
	BodyweightFactor *float64      `json:"bodyweightFactor,omitempty"`
	Standards        *Standards    `json:"standards,omitempty"`
	IsCustom         bool          `json:"isCustom"`
	CreatedBy        *int64        `json:"createdBy,omitempty"`
}

type Session struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Date            time.Time `json:"date"`
	PlanID          *int64    `json:"planId,omitempty"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	Comment         string    `json:"comment,omitempty"`
	IsDeload        bool      `json:"isDeload"`
}

// Set is a logged set with its exercise and the owning session's date eagerly loaded.
type Set struct {
	ID              int64     `json:"id"`
	SessionID       int64     `json:"sessionId"`
	SessionDate     time.Time `json:"sessionDate"`
	SessionIsDeload bool      `json:"sessionIsDeload"`
	Exercise        Exercise  `json:"exercise"`
	SetNumber       int       `json:"setNumber"`
	Weight          Weight    `json:"weight"`
	Reps            int       `json:"reps"`
	RPE             *float64  `json:"rpe,omitempty"`
	IsWarmup        bool      `json:"isWarmup"`
	SupersetGroup   int       `json:"supersetGroup"`
	Note            string    `json:"note,omitempty"`
}

func (s Set) Volume() float64 {
	return s.Weight.Kilos() * float64(s.Reps)
}

type Plan struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	GroupID     *uuid.UUID     `json:"groupId,omitempty"`
	GroupOrder  int            `json:"groupOrder"`
	Exercises   []PlanExercise `json:"exercises"`
}

// MaxOrder returns the highest order value in the plan, 0 when empty.
func (p *Plan) MaxOrder() int {
	maxOrder := 0
	for _, pe := range p.Exercises {
		if pe.Order > maxOrder {
			maxOrder = pe.Order
		}
	}
	return maxOrder
}

func (p *Plan) HasExercise(exerciseID int64) bool {
	for _, pe := range p.Exercises {
		if pe.Exercise.ID == exerciseID {
			return true
		}
	}
	return false
}

type PlanExercise struct {
	ID            int64    `json:"id"`
	PlanID        int64    `json:"planId"`
	Exercise      Exercise `json:"exercise"`
	Order         int      `json:"order"`
	TrainingDay   string   `json:"trainingDay,omitempty"`
	TargetSets    int      `json:"targetSets"`
	TargetReps    string   `json:"targetReps"`
	RestSeconds   *int     `json:"restSeconds,omitempty"`
	SupersetGroup int      `json:"supersetGroup"`
	Note          string   `json:"note,omitempty"`
}

type BodyMeasurement struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Date       time.Time `json:"date"`
	HeightCM   int       `json:"heightCm"`
	BodyWeight Weight    `json:"bodyWeight"`
	BodyFatPct *float64  `json:"bodyFatPct,omitempty"`
	MuscleMass *Weight   `json:"muscleMass,omitempty"`
	FatMass    *Weight   `json:"fatMass,omitempty"`
	WaterMass  *Weight   `json:"waterMass,omitempty"`
	BoneMass   *Weight   `json:"boneMass,omitempty"`
	Note       string    `json:"note,omitempty"`
}

// Validate rejects physically implausible measurements.
func (m BodyMeasurement) Validate() error {
	if m.HeightCM < 100 || m.HeightCM > 250 {
		return apperr.Newf(apperr.KindValidation, "height %d cm out of range", m.HeightCM)
	}
	if m.BodyWeight < KG(30) || m.BodyWeight > KG(300) {
		return apperr.Newf(apperr.KindValidation, "body weight %s kg out of range", m.BodyWeight)
	}
	if m.BodyFatPct != nil && (*m.BodyFatPct < 2 || *m.BodyFatPct > 70) {
		return apperr.Newf(apperr.KindValidation, "body fat %.1f%% out of range", *m.BodyFatPct)
	}
	return nil
}

type UserProfile struct {
	UserID             int64      `json:"userId"`
	ActivePlanGroup    *uuid.UUID `json:"activePlanGroup,omitempty"`
	CycleLength        int        `json:"cycleLength"`
	CycleStartDate     *time.Time `json:"cycleStartDate,omitempty"`
	DeloadVolumeFactor float64    `json:"deloadVolumeFactor"`
	DeloadWeightFactor float64    `json:"deloadWeightFactor"`
	DeloadRPETarget    float64    `json:"deloadRpeTarget"`

	AIPlanCountToday     int        `json:"aiPlanCountToday"`
	AIGuidanceCountToday int        `json:"aiGuidanceCountToday"`
	AIAnalysisCountToday int        `json:"aiAnalysisCountToday"`
	AICounterResetDate   *time.Time `json:"aiCounterResetDate,omitempty"`
}

func NewDefaultProfile(userID int64) UserProfile {
	return UserProfile{
		UserID:             userID,
		CycleLength:        DefaultCycleLength,
		DeloadVolumeFactor: DefaultDeloadVolumeFactor,
		DeloadWeightFactor: DefaultDeloadWeightFactor,
		DeloadRPETarget:    DefaultDeloadRPETarget,
	}
}

func (p UserProfile) Validate() error {
	if p.CycleLength < MinCycleLength || p.CycleLength > MaxCycleLength {
		return apperr.Newf(apperr.KindValidation, "cycle length %d not in [%d,%d]", p.CycleLength, MinCycleLength, MaxCycleLength)
	}
	if p.DeloadVolumeFactor < 0.5 || p.DeloadVolumeFactor > 1.0 {
		return apperr.Newf(apperr.KindValidation, "deload volume factor %.2f not in [0.5,1.0]", p.DeloadVolumeFactor)
	}
	if p.DeloadWeightFactor < 0.5 || p.DeloadWeightFactor > 1.0 {
		return apperr.Newf(apperr.KindValidation, "deload weight factor %.2f not in [0.5,1.0]", p.DeloadWeightFactor)
	}
	if p.DeloadRPETarget < 5.0 || p.DeloadRPETarget > 9.0 {
		return apperr.Newf(apperr.KindValidation, "deload rpe target %.1f not in [5.0,9.0]", p.DeloadRPETarget)
	}
	return nil
}

type EndpointKind string

const (
	EndpointPlanGenerate EndpointKind = "plan_generate"
	EndpointPlanOptimize EndpointKind = "plan_optimize"
	EndpointLiveGuidance EndpointKind = "live_guidance"
)

func (k EndpointKind) IsValid() bool {
	switch k {
	case EndpointPlanGenerate, EndpointPlanOptimize, EndpointLiveGuidance:
		return true
	}
	return false
}

// LimitKind is the daily counter a call is gated by.
type LimitKind string

const (
	LimitPlan     LimitKind = "plan"
	LimitGuidance LimitKind = "guidance"
	LimitAnalysis LimitKind = "analysis"
)

func (k LimitKind) IsValid() bool {
	switch k {
	case LimitPlan, LimitGuidance, LimitAnalysis:
		return true
	}
	return false
}

func (k LimitKind) String() string { return string(k) }

// AICallLog is one append-only ledger entry per LLM call.
type AICallLog struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"userId"`
	Endpoint     EndpointKind `json:"endpoint"`
	ModelName    string       `json:"modelName"`
	TokensIn     int          `json:"tokensIn"`
	TokensOut    int          `json:"tokensOut"`
	CostEUR      float64      `json:"costEur"`
	Success      bool         `json:"success"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (l AICallLog) String() string {
	return fmt.Sprintf("ai call [user=%d endpoint=%s model=%s in=%d out=%d cost=%.6f ok=%t]",
		l.UserID, l.Endpoint, l.ModelName, l.TokensIn, l.TokensOut, l.CostEUR, l.Success)
}
