// Package classifier names the pest in a leaf image.
package classifier

import (
	"context"
	"math/rand"
)

type Diagnosis struct {
	Name            string   `json:"name"`
	Confidence      int      `json:"confidence"` // percent
	Recommendations []string `json:"recommendations"`
}

type Classifier interface {
	Classify(ctx context.Context, image []byte) (Diagnosis, error)
}

// Catalog is the fixed set of outcomes the mock picks from.
func Catalog() []Diagnosis {
	return []Diagnosis{
		{
			Name:       "Aphids",
			Confidence: 85,
			Recommendations: []string{
				"Use neem oil spray",
				"Introduce ladybugs as natural predators",
				"Remove affected leaves",
				"Apply insecticidal soap",
			},
		},
		{
			Name:       "Spider Mites",
			Confidence: 78,
			Recommendations: []string{
				"Increase humidity around plants",
				"Use miticide if infestation is severe",
				"Regularly spray leaves with water",
				"Isolate affected plants",
			},
		},
		{
			Name:       "No Pest Detected",
			Confidence: 90,
			Recommendations: []string{
				"Continue regular monitoring",
				"Maintain good garden hygiene",
				"Practice crop rotation",
			},
		},
	}
}

type mock struct {
	catalog []Diagnosis
	pick    func(n int) int
}

// NewMock ignores the image and returns a uniformly chosen catalog entry.
// pick(n) must return a value in [0, n); nil uses math/rand.
func NewMock(pick func(n int) int) Classifier {
	if pick == nil {
		pick = rand.Intn
	}
	return &mock{catalog: Catalog(), pick: pick}
}

func (m *mock) Classify(ctx context.Context, _ []byte) (Diagnosis, error) {
	if err := ctx.Err(); err != nil {
		return Diagnosis{}, err
	}
	d := m.catalog[m.pick(len(m.catalog))]
	d.Recommendations = append([]string(nil), d.Recommendations...)
	return d, nil
}
