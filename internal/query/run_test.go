package query

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lukaszgryglicki/kernel3d/internal/log"
)

func loadAndRun(t *testing.T, name string) *Report {
	t.Helper()
	cfg, err := LoadConfig(filepath.Join("testdata", name))
	require.NoError(t, err)
	rep, err := Run(context.Background(), cfg, log.Nop())
	require.NoError(t, err)
	return rep
}

func TestRunScenarios(t *testing.T) {
	rep := loadAndRun(t, "queries.yaml")
	require.Len(t, rep.Results, 6)
	byID := map[string]Result{}
	for _, r := range rep.Results {
		byID[r.ID] = r
	}

	entry := byID["entry"]
	require.NotNil(t, entry.Hit)
	assert.True(t, *entry.Hit)
	assert.Equal(t, Real(1), *entry.Distance)
	assert.Equal(t, Vector3{X: 0.5, Y: 0.5, Z: 0}, *entry.Point)
	assert.Equal(t, Vector3{X: 0.5, Y: 0.5, Z: 1}, *entry.Point2)

	assert.Equal(t, Real(1), *byID["apart"].Distance)

	touch := byID["touch"]
	assert.False(t, *touch.Hit)
	assert.Nil(t, touch.Point)

	cast := byID["cast"]
	assert.True(t, *cast.Hit)
	assert.Equal(t, "unit", cast.Target)
	assert.Equal(t, Real(1), *cast.Distance)

	inside := byID["inside"]
	assert.True(t, *inside.Hit)
	assert.Equal(t, "contains", inside.Relation)

	// the unnamed projection gets a generated id
	proj := rep.Results[3]
	_, err := uuid.Parse(proj.ID)
	assert.NoError(t, err)
	assert.Equal(t, Vector3{X: 5, Y: 0, Z: 0}, *proj.Point)

	assert.Equal(t, Summary{
		Total: 6,
		Hits:  4,
		ByOp: []OpCount{
			{OpContains, 1}, {OpDistance, 1}, {OpIntersect, 2}, {OpProject, 1}, {OpRaycast, 1},
		},
	}, rep.Summary)
}

func TestRunSymmetricPairs(t *testing.T) {
	rep := loadAndRun(t, "queries.json")
	cross := rep.Results[0]
	assert.True(t, *cross.Hit)
	assert.InDelta(t, 2, cross.Point.X, 1e-9)
	assert.InDelta(t, 0, cross.Point.Y, 1e-9)
	assert.Equal(t, Real(3), *rep.Results[1].Distance)
}

func TestRunUnsupportedPair(t *testing.T) {
	cfg := &Config{
		Shapes: map[string]ShapeCfg{
			"l": {Kind: KindLine, Value: "0 0 0 1 0 0"},
			"s": {Kind: KindSegment, Value: "0 1 0 1 1 0"},
		},
		Queries: []QueryCfg{{Name: "odd", Op: OpDistance, A: "l", B: "s"}},
	}
	require.NoError(t, cfg.Validate())
	_, err := Run(context.Background(), cfg, log.Nop())
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorContains(t, err, "query odd")
}

func TestRunRaycastNeedsRay(t *testing.T) {
	cfg := &Config{
		Shapes:  map[string]ShapeCfg{"o": {Kind: KindPoint, Value: "0 0 0"}},
		Queries: []QueryCfg{{Op: OpRaycast, A: "o"}},
	}
	require.NoError(t, cfg.Validate())
	_, err := Run(context.Background(), cfg, log.Nop())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRunRaycastMaxT(t *testing.T) {
	cfg := &Config{
		Shapes: map[string]ShapeCfg{
			"r": {Kind: KindRay, Value: "0 0.5 0.5 1 0 0"},
			"b": {Kind: KindBox, Value: "5 0 0 6 1 1"},
		},
		Queries: []QueryCfg{{Name: "short", Op: OpRaycast, A: "r", MaxT: 2}, {Name: "long", Op: OpRaycast, A: "r"}},
	}
	require.NoError(t, cfg.Validate())
	rep, err := Run(context.Background(), cfg, log.Nop())
	require.NoError(t, err)
	assert.False(t, *rep.Results[0].Hit)
	assert.True(t, *rep.Results[1].Hit)
	assert.Equal(t, Real(5), *rep.Results[1].Distance)
}

func TestRunCancelled(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "queries.yaml"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, cfg, log.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg, err := LoadConfig(filepath.Join("testdata", "queries.yaml"))
	require.NoError(t, err)
	_, err = Run(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, 6, logs.FilterMessage("query done").Len())
	summary := logs.FilterMessage("queries evaluated").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(4), summary[0].ContextMap()["hits"])
}
