package drawer

import (
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/loomcrm/go-shipping-pipeline/internal/store"
)

// SVGDrawer renders the pipeline run graph as a DOT file suitable for
// `dot -Tsvg`. Steps are coloured on a blue to red gradient by relative
// duration; failed steps are filled red, skipped steps grey.
type SVGDrawer struct {
	graph     graph.Graph[string, string]
	store     store.CustomStore[string, string]
	durations map[string]time.Duration
	fileName  string
}

// NewSVGDrawer creates a drawer writing to fileName.
func NewSVGDrawer(fileName string) *SVGDrawer {
	st := store.NewMemoryStore[string, string]()

	return &SVGDrawer{
		fileName:  fileName,
		store:     st,
		graph:     graph.NewWithStore[string, string](graph.StringHash, st, graph.Directed(), graph.PreventCycles()),
		durations: make(map[string]time.Duration),
	}
}

// AddStep adds a step vertex. Adding the same step twice is not an error so
// that one drawer can serve consecutive runs.
func (d *SVGDrawer) AddStep(stepName string) error {
	err := d.graph.AddVertex(stepName)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds an execution-order edge between two steps.
func (d *SVGDrawer) AddLink(parentStepName, childStepName string) error {
	err := d.graph.AddEdge(parentStepName, childStepName)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentStepName, childStepName)
	}

	return nil
}

// SetStatus annotates a step with its outcome.
func (d *SVGDrawer) SetStatus(stepName, status string) error {
	d.store.UpdateVertex(stepName, func(p *graph.VertexProperties) {
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes["status"] = status
	})

	return nil
}

// SetDuration annotates a step with its elapsed time.
func (d *SVGDrawer) SetDuration(stepName string, elapsed time.Duration) error {
	d.durations[stepName] = elapsed
	d.store.UpdateVertex(stepName, func(p *graph.VertexProperties) {
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes["xlabel"] = elapsed.String()
	})

	return nil
}

// Draw colours the steps and writes the DOT file.
func (d *SVGDrawer) Draw() error {
	err := d.applyHeat()
	if err != nil {
		return errors.Wrap(err, "unable to colour steps")
	}

	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = renderDOT(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.fileName)
	}

	return nil
}

const maxRGB = 240

// applyHeat colours succeeded steps on a blue to red gradient by relative
// duration. Failed and skipped steps keep fixed colours regardless of time.
func (d *SVGDrawer) applyHeat() error {
	if len(d.durations) == 0 {
		return nil
	}

	sorted := make([]time.Duration, 0, len(d.durations))
	for _, elapsed := range d.durations {
		sorted = append(sorted, elapsed)
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	maxValue := sorted[0]
	minValue := sorted[len(sorted)-1]

	for stepName, elapsed := range d.durations {
		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(elapsed-minValue) / float64(maxValue-minValue)
		}

		heat, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB*(1-fraction))) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		d.store.UpdateVertex(stepName, func(p *graph.VertexProperties) {
			if p.Attributes == nil {
				p.Attributes = make(map[string]string)
			}

			switch p.Attributes["status"] {
			case StatusFailed:
				p.Attributes["color"] = "red"
				p.Attributes["style"] = "filled"
			case StatusSkipped, "":
				p.Attributes["color"] = "grey"
			default:
				p.Attributes["color"] = heat.ToHEX().String()
			}
		})
	}

	return nil
}

const dotTemplate = `strict digraph {
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}-> "{{.Target}}"{{else}}[ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}} ]{{end}};
	{{end}}
	}
	`

type statement struct {
	Source     string
	Target     string
	Attributes map[string]string
}

type description struct {
	Statements []statement
}

func renderDOT(g graph.Graph[string, string], wrt io.Writer) error {
	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	vertices := make([]string, 0, len(adjacencyMap))
	for vertex := range adjacencyMap {
		vertices = append(vertices, vertex)
	}
	sort.Strings(vertices)

	desc := description{}

	for _, vertex := range vertices {
		_, properties, err := g.VertexWithProperties(vertex)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:     vertex,
			Attributes: properties.Attributes,
		})

		adjacencies := make([]string, 0, len(adjacencyMap[vertex]))
		for adjacency := range adjacencyMap[vertex] {
			adjacencies = append(adjacencies, adjacency)
		}
		sort.Strings(adjacencies)

		for _, adjacency := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source: vertex,
				Target: adjacency,
			})
		}
	}

	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
