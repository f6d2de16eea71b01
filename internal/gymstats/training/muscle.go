package training

type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "BRUST"
	MuscleFrontDelts MuscleGroup = "SCHULTER_VORN"
	MuscleSideDelts  MuscleGroup = "SCHULTER_SEIT"
	MuscleRearDelts  MuscleGroup = "SCHULTER_HINT"
	MuscleTriceps    MuscleGroup = "TRIZEPS"
	MuscleLats       MuscleGroup = "RUECKEN_LAT"
	MuscleTraps      MuscleGroup = "RUECKEN_TRAPEZ"
	MuscleLowerBack  MuscleGroup = "RUECKEN_UNTEN"
	MuscleUpperBack  MuscleGroup = "RUECKEN_OBERER"
	MuscleBiceps     MuscleGroup = "BIZEPS"
	MuscleForearms   MuscleGroup = "UNTERARME"
	MuscleQuads      MuscleGroup = "BEINE_QUAD"
	MuscleHamstrings MuscleGroup = "BEINE_HAM"
	MuscleGlutes     MuscleGroup = "PO"
	MuscleCalves     MuscleGroup = "WADEN"
	MuscleAdductors  MuscleGroup = "ADDUKTOREN"
	MuscleAbductors  MuscleGroup = "ABDUKTOREN"
	MuscleAbs        MuscleGroup = "BAUCH"
	MuscleFullBody   MuscleGroup = "GANZKOERPER"
)

var muscleLabels = map[MuscleGroup]string{
	MuscleChest:      "Brust",
	MuscleFrontDelts: "Schulter - Vordere",
	MuscleSideDelts:  "Schulter - Seitliche",
	MuscleRearDelts:  "Schulter - Hintere",
	MuscleTriceps:    "Trizeps",
	MuscleLats:       "Rücken - Latissimus",
	MuscleTraps:      "Rücken - Trapez",
	MuscleLowerBack:  "Unterer Rücken",
	MuscleUpperBack:  "Oberer Rücken",
	MuscleBiceps:     "Bizeps",
	MuscleForearms:   "Unterarme",
	MuscleQuads:      "Oberschenkel Vorn",
	MuscleHamstrings: "Oberschenkel Hinten",
	MuscleGlutes:     "Gesäß",
	MuscleCalves:     "Waden",
	MuscleAdductors:  "Adduktoren",
	MuscleAbductors:  "Abduktoren",
	MuscleAbs:        "Bauch",
	MuscleFullBody:   "Ganzkörper",
}

// AllMuscleGroups in display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleFrontDelts, MuscleSideDelts, MuscleRearDelts, MuscleTriceps,
	MuscleLats, MuscleTraps, MuscleLowerBack, MuscleUpperBack, MuscleBiceps, MuscleForearms,
	MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleAdductors, MuscleAbductors,
	MuscleAbs, MuscleFullBody,
}

var pushMuscles = map[MuscleGroup]bool{
	MuscleChest:      true,
	MuscleFrontDelts: true,
	MuscleSideDelts:  true,
	MuscleTriceps:    true,
}

var pullMuscles = map[MuscleGroup]bool{
	MuscleLats:      true,
	MuscleTraps:     true,
	MuscleLowerBack: true,
	MuscleUpperBack: true,
	MuscleRearDelts: true,
	MuscleBiceps:    true,
}

func (m MuscleGroup) IsValid() bool {
	_, ok := muscleLabels[m]
	return ok
}

func (m MuscleGroup) Label() string {
	if l, ok := muscleLabels[m]; ok {
		return l
	}
	return string(m)
}

func (m MuscleGroup) IsPush() bool { return pushMuscles[m] }
func (m MuscleGroup) IsPull() bool { return pullMuscles[m] }

type WeightType string

const (
	WeightTotal      WeightType = "GESAMT"
	WeightPerSide    WeightType = "PRO_SEITE"
	WeightBodyweight WeightType = "KOERPERGEWICHT"
	WeightTime       WeightType = "ZEIT"
)

func (wt WeightType) IsValid() bool {
	switch wt {
	case WeightTotal, WeightPerSide, WeightBodyweight, WeightTime:
		return true
	}
	return false
}

type MovementType string

const (
	MovementPush      MovementType = "DRUECKEN"
	MovementPull      MovementType = "ZIEHEN"
	MovementSquat     MovementType = "BEUGEN"
	MovementHinge     MovementType = "HEBEN"
	MovementIsolation MovementType = "ISOLATION"
)

func (mt MovementType) IsValid() bool {
	switch mt {
	case MovementPush, MovementPull, MovementSquat, MovementHinge, MovementIsolation:
		return true
	}
	return false
}

func (mt MovementType) IsCompound() bool {
	return mt != MovementIsolation && mt != ""
}
