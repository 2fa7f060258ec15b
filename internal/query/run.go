package query

import (
	"context"
	"encoding/xml"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lukaszgryglicki/kernel3d/internal/bvh"
	"github.com/lukaszgryglicki/kernel3d/internal/geom"
	"github.com/lukaszgryglicki/kernel3d/internal/scalar"
)

// Result is the outcome of one query. Which fields are set depends on the
// op and the shapes: Distance carries distances and ray parameters, Point
// and Point2 carry crossings or closest points, Relation a plane side or a
// containment class.
type Result struct {
	ID       string   `json:"id" yaml:"id" xml:"id,attr"`
	Op       string   `json:"op" yaml:"op" xml:"op,attr"`
	A        string   `json:"a" yaml:"a" xml:"a,attr"`
	B        string   `json:"b,omitempty" yaml:"b,omitempty" xml:"b,attr,omitempty"`
	Hit      *bool    `json:"hit,omitempty" yaml:"hit,omitempty" xml:"hit,omitempty"`
	Distance *Real    `json:"distance,omitempty" yaml:"distance,omitempty" xml:"distance,omitempty"`
	Radius   *Real    `json:"radius,omitempty" yaml:"radius,omitempty" xml:"radius,omitempty"`
	Point    *Vector3 `json:"point,omitempty" yaml:"point,omitempty" xml:"point,omitempty"`
	Point2   *Vector3 `json:"point2,omitempty" yaml:"point2,omitempty" xml:"point2,omitempty"`
	Relation string   `json:"relation,omitempty" yaml:"relation,omitempty" xml:"relation,omitempty"`
	Target   string   `json:"target,omitempty" yaml:"target,omitempty" xml:"target,omitempty"`
}

type OpCount struct {
	Op    string `json:"op" yaml:"op" xml:"op,attr"`
	Count int    `json:"count" yaml:"count" xml:"count,attr"`
}

type Summary struct {
	Total int       `json:"total" yaml:"total" xml:"total"`
	Hits  int       `json:"hits" yaml:"hits" xml:"hits"`
	ByOp  []OpCount `json:"byOp" yaml:"byOp" xml:"op"`
}

type Report struct {
	XMLName xml.Name `json:"-" yaml:"-" xml:"report"`
	Results []Result `json:"results" yaml:"results" xml:"result"`
	Summary Summary  `json:"summary" yaml:"summary" xml:"summary"`
}

// Run evaluates every query of a validated config on up to cfg.Workers
// goroutines. Results keep the query order. The first failing query
// cancels the rest.
func Run(ctx context.Context, cfg *Config, logger *zap.Logger) (*Report, error) {
	shapes, err := cfg.BuildShapes()
	if err != nil {
		return nil, err
	}
	byName := lo.KeyBy(shapes, func(s Shape) string { return s.Name })

	var tree *bvh.Tree
	boxes := lo.Filter(shapes, func(s Shape, _ int) bool { return s.Kind == KindBox })
	if lo.ContainsBy(cfg.Queries, func(q QueryCfg) bool { return q.Op == OpRaycast }) {
		tree = bvh.Build(lo.Map(boxes, func(s Shape, i int) bvh.Item {
			return bvh.Item{Bounds: s.Value.(geom.BoundingBox), ID: i}
		}))
		logger.Debug("built box hierarchy", zap.Int("boxes", tree.Len()), zap.Int("depth", tree.Depth()))
	}

	start := time.Now()
	results := make([]Result, len(cfg.Queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, q := range cfg.Queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			id := q.Name
			if id == "" {
				id = uuid.NewString()
			}
			r := Result{ID: id, Op: q.Op, A: q.A, B: q.B}
			if err := evaluate(q, byName, tree, boxes, &r); err != nil {
				return errors.Wrapf(err, "query %s", id)
			}
			logger.Debug("query done", zap.String("id", id), zap.String("op", q.Op), zap.Boolp("hit", r.Hit))
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Results: results, Summary: summarize(results)}
	logger.Info("queries evaluated",
		zap.Int("total", rep.Summary.Total),
		zap.Int("hits", rep.Summary.Hits),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rep, nil
}

func evaluate(q QueryCfg, shapes map[string]Shape, tree *bvh.Tree, boxes []Shape, r *Result) error {
	a, ok := shapes[q.A]
	if !ok {
		return errors.Wrapf(ErrUnknownShape, "a %q", q.A)
	}
	if q.Op == OpRaycast {
		return raycast(a, q.MaxT, tree, boxes, r)
	}
	b, ok := shapes[q.B]
	if !ok {
		return errors.Wrapf(ErrUnknownShape, "b %q", q.B)
	}
	var done bool
	switch q.Op {
	case OpDistance:
		done = symmetric(a.Value, b.Value, r, distanceOrdered)
	case OpIntersect:
		done = symmetric(a.Value, b.Value, r, intersectOrdered)
	case OpProject:
		done = projectOnto(a.Value, b.Value, r)
	case OpContains:
		done = containsOrdered(a.Value, b.Value, r)
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", q.Op)
	}
	if !done {
		return errors.Wrapf(ErrUnsupported, "%s of %s and %s", q.Op, a.Kind, b.Kind)
	}
	return nil
}

func raycast(a Shape, maxT Real, tree *bvh.Tree, boxes []Shape, r *Result) error {
	ray, ok := a.Value.(geom.Ray)
	if !ok {
		return errors.Wrapf(ErrUnsupported, "raycast from %s", a.Kind)
	}
	if maxT <= 0 {
		maxT = scalar.Inf(1)
	}
	h, ok := tree.Raycast(ray, maxT)
	r.hit(ok)
	if ok {
		r.Distance = lo.ToPtr(h.T)
		r.Point = lo.ToPtr(h.Point)
		r.Target = boxes[h.ID].Name
	}
	return nil
}

func summarize(results []Result) Summary {
	counts := lo.CountValuesBy(results, func(r Result) string { return r.Op })
	ops := lo.Keys(counts)
	sort.Strings(ops)
	return Summary{
		Total: len(results),
		Hits:  lo.CountBy(results, func(r Result) bool { return r.Hit != nil && *r.Hit }),
		ByOp: lo.Map(ops, func(op string, _ int) OpCount {
			return OpCount{Op: op, Count: counts[op]}
		}),
	}
}
