package director

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/cavegen/pkg/cave"
	"github.com/dshills/cavegen/pkg/cavern"
	"github.com/dshills/cavegen/pkg/labyrinth"
	"github.com/dshills/cavegen/pkg/lighting"
	"github.com/dshills/cavegen/pkg/populate"
	"github.com/dshills/cavegen/pkg/profiles"
	"github.com/dshills/cavegen/pkg/rng"
	"github.com/dshills/cavegen/pkg/town"
)

// lightRadius is the baseline field-of-view sweep radius lightPassages uses
// to light the player's start cell.
const lightRadius = 3

// Director owns the data tables and observability surface shared by every
// generate call; it holds no per-level state.
type Director struct {
	Tables  *profiles.Tables
	Logger  *logrus.Logger
	Metrics *Metrics
}

// New builds a Director from an already-loaded table set. A nil logger or
// metrics is replaced with a usable default so callers that don't care
// about either can pass zero values.
func New(tables *profiles.Tables, logger *logrus.Logger, metrics *Metrics) *Director {
	if logger == nil {
		logger = logrus.New()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Director{Tables: tables, Logger: logger, Metrics: metrics}
}

// Output is everything a successful Generate call hands back.
type Output struct {
	Level     *cave.Level
	Registry  *populate.Registry
	Profile   string
	Feeling   Feeling
	RoomCount int
}

// Generate builds one level for cfg, retrying on any transient builder or
// connectivity failure up to cfg.Retries attempts before returning a fatal
// error naming the last failure reason.
func (d *Director) Generate(cfg Config) (Output, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Output{}, err
	}

	start := time.Now()
	configHash := hashConfig(cfg)
	isQuestDepth := len(cfg.QuestRaces) > 0

	profile, err := d.pickProfile(cfg, configHash, isQuestDepth)
	if err != nil {
		return Output{}, err
	}

	var lastReason string
	for attempt := 0; attempt < cfg.Retries; attempt++ {
		d.Metrics.Attempts.WithLabelValues(profile.Name).Inc()
		if attempt > 0 {
			d.Metrics.Retries.WithLabelValues(profile.Name).Inc()
		}

		out, ok, reason, err := d.attempt(cfg, profile, configHash, attempt)
		if err != nil {
			return Output{}, fmt.Errorf("director: profile %q attempt %d: %w", profile.Name, attempt, err)
		}
		if ok {
			d.Metrics.Duration.WithLabelValues(profile.Name).Observe(time.Since(start).Seconds())
			d.Logger.WithFields(logrus.Fields{
				"profile":  profile.Name,
				"depth":    cfg.Depth,
				"attempts": attempt + 1,
				"feeling_object":  out.Feeling.Object,
				"feeling_monster": out.Feeling.Monster,
			}).Info("cavegen: level generated")
			return out, nil
		}

		lastReason = reason
		d.Metrics.Failures.WithLabelValues(profile.Name, reason).Inc()
		d.Logger.WithFields(logrus.Fields{
			"profile": profile.Name,
			"depth":   cfg.Depth,
			"attempt": attempt,
			"reason":  reason,
		}).Debug("cavegen: attempt discarded, retrying")
	}

	return Output{}, fmt.Errorf("director: exhausted %d attempts for profile %q at depth %d, last reason: %s",
		cfg.Retries, profile.Name, cfg.Depth, lastReason)
}

func (d *Director) pickProfile(cfg Config, configHash []byte, isQuestDepth bool) (profiles.CaveProfile, error) {
	if cfg.ForceProfile != "" {
		cp, ok := forceProfile(d.Tables, cfg.ForceProfile)
		if !ok {
			return profiles.CaveProfile{}, fmt.Errorf("director: unknown forced profile %q", cfg.ForceProfile)
		}
		return cp, nil
	}
	keyRNG := rng.NewRNG(cfg.Seed, "profile", configHash)
	return selectProfile(d.Tables, cfg.Depth, keyRNG.RandInt0(100), isQuestDepth)
}

// attempt runs exactly one generate-and-populate pass. ok=false with a
// non-empty reason is a normal, retryable outcome; a non-nil error is a
// programmer error or structural invariant violation that should abort the
// whole call.
func (d *Director) attempt(cfg Config, profile profiles.CaveProfile, configHash []byte, attemptNo int) (Output, bool, string, error) {
	buildRNG := rng.NewRNG(cfg.Seed, stageName("build", attemptNo), configHash)
	populateRNG := rng.NewRNG(cfg.Seed, stageName("populate", attemptNo), configHash)
	lightingRNG := rng.NewRNG(cfg.Seed, stageName("lighting", attemptNo), configHash)

	w, h := cave.DungeonWid, cave.DungeonHgt
	if profile.Builder == profiles.BuilderTown {
		w, h = town.Dimensions()
	}
	l, err := cave.NewLevel(cfg.Depth, w, h)
	if err != nil {
		return Output{}, false, "", err
	}
	st := cave.NewState(w, h)

	in, ok, reason, err := d.runBuilder(l, st, buildRNG, profile, cfg)
	if err != nil {
		return Output{}, false, "", err
	}
	if !ok {
		return Output{}, false, reason, nil
	}

	in.QuestRaces = cfg.QuestRaces
	reg := populate.NewRegistry()
	feeling := populateLevel(l, reg, populateRNG, d.Tables, cfg.Depth, in)

	lightPassages(l, lightingRNG, in)

	if !l.VerifyOuterRing() {
		return Output{}, false, "broken outer ring", nil
	}

	l.ObjRating, l.MonRating = feeling.ObjectRating, feeling.MonsterRating
	l.ObjFeeling, l.MonFeeling = feeling.Object, feeling.Monster

	return Output{Level: l, Registry: reg, Profile: profile.Name, Feeling: feeling, RoomCount: in.RoomCount}, true, "", nil
}

// runBuilder dispatches to the builder named by profile.Builder and adapts
// its result into the shared populateInput shape.
func (d *Director) runBuilder(l *cave.Level, st *cave.State, r *rng.RNG, profile profiles.CaveProfile, cfg Config) (populateInput, bool, string, error) {
	switch profile.Builder {
	case profiles.BuilderTown:
		res, ok, err := town.Build(l, r, cfg.IsDay)
		if err != nil || !ok {
			return populateInput{}, ok, "town build failed", err
		}
		return populateInput{Start: res.StairDown, MonsterSpots: res.ResidentSpots}, true, "", nil

	case profiles.BuilderCavern:
		_, ok, err := cavern.Build(l, st, r, profile)
		if err != nil || !ok {
			return populateInput{}, ok, "cavern too sparse", err
		}
		start := cave.Point{X: l.Width / 2, Y: l.Height / 2}
		if len(st.Centers) > 0 {
			start = st.Centers[0]
		}
		if !l.At(start.X, start.Y).IsFloor() {
			l.Each(func(x, y int, c *cave.Cell) {
				if c.IsFloor() && !l.At(start.X, start.Y).IsFloor() {
					start = cave.Point{X: x, Y: y}
				}
			})
		}
		return populateInput{Start: start}, true, "", nil

	case profiles.BuilderLabyrinth:
		res, ok, err := labyrinth.Build(l, r, cfg.Depth)
		if err != nil || !ok {
			return populateInput{}, ok, "labyrinth build failed", err
		}
		return populateInput{
			Start:        res.Start,
			MonsterSpots: res.MonsterSpots,
			TrapSpots:    res.TrapSpots,
		}, true, "", nil

	default:
		results, ok, err := buildDefault(l, st, r, profile, cfg.Depth, d.Tables)
		if err != nil || !ok {
			return populateInput{}, ok, "default build failed", err
		}
		start := results[0].Center
		var monsterSpots, trapSpots, treasureSpots []cave.Point
		for _, res := range results {
			monsterSpots = append(monsterSpots, res.MonsterSpots...)
			trapSpots = append(trapSpots, res.TrapSpots...)
			treasureSpots = append(treasureSpots, res.TreasureSpots...)
			lighting.LightArea(l, res.Center.X-res.Width/2, res.Center.Y-res.Height/2,
				res.Center.X+res.Width/2, res.Center.Y+res.Height/2)
		}
		placeStairs(l, r, 3+r.RandInt0(2), 1+r.RandInt0(2))
		return populateInput{
			Start:         start,
			MonsterSpots:  monsterSpots,
			TrapSpots:     trapSpots,
			TreasureSpots: treasureSpots,
			RoomCount:     len(results),
		}, true, "", nil
	}
}

// lightPassages gives the player's start position one field-of-view sweep,
// occasionally a little wider than the baseline radius, so a freshly
// generated level isn't pitch black at the cell the player stands on.
func lightPassages(l *cave.Level, r *rng.RNG, in populateInput) {
	radius := lightRadius
	if r.OneIn(4) {
		radius++
	}
	lighting.LightRoom(l, in.Start, radius)
}

func stageName(stage string, attempt int) string {
	return fmt.Sprintf("%s-%d", stage, attempt)
}

// hashConfig derives the config-hash input to every stage RNG from the
// Depth, IsDay and ForceProfile. QuestRaces is left out of the hash, but a
// non-empty list still marks a quest depth, which can change which profile
// selectProfile picks (profiles with ExcludeQuest are skipped).
func hashConfig(cfg Config) []byte {
	h := sha256.New()
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(cfg.Depth))
	if cfg.IsDay {
		buf[8] = 1
	}
	h.Write(buf[:])
	h.Write([]byte(cfg.ForceProfile))
	sum := h.Sum(nil)
	return sum
}
