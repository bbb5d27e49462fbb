package shipping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping"
	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping/model"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        model.Input
		wantPackages []string
		wantItems    []string
	}{
		{
			name:  "no packages",
			input: model.Input{Items: []model.LineItem{{Name: "hat"}}},
		},
		{
			name: "every package assigned",
			input: model.Input{
				Items: []model.LineItem{
					{Name: "hat", PackageQuantities: map[int]int{1: 2}},
					{Name: "scarf", PackageQuantities: map[int]int{2: 1}},
				},
				Packages: []model.Package{
					{LocalID: 1, Name: "Box A"},
					{LocalID: 2, Name: "Box B"},
				},
			},
		},
		{
			name: "one package empty",
			input: model.Input{
				Items: []model.LineItem{
					{Name: "hat", PackageQuantities: map[int]int{1: 2}},
				},
				Packages: []model.Package{
					{LocalID: 1, Name: "Box A"},
					{LocalID: 2, Name: "Box B"},
				},
			},
			wantPackages: []string{"Box B"},
		},
		{
			name: "zero quantity does not count as assigned",
			input: model.Input{
				Items: []model.LineItem{
					{Name: "hat", PackageQuantities: map[int]int{1: 0}},
				},
				Packages: []model.Package{{LocalID: 1, Name: "Box A"}},
			},
			wantPackages: []string{"Box A"},
		},
		{
			name: "assignment references unknown package",
			input: model.Input{
				Items: []model.LineItem{
					{Name: "hat", PackageQuantities: map[int]int{1: 2, 7: 1}},
				},
				Packages: []model.Package{{LocalID: 1, Name: "Box A"}},
			},
			wantItems: []string{"hat"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := shipping.Validate(tc.input)

			if len(tc.wantPackages) == 0 && len(tc.wantItems) == 0 {
				assert.NoError(t, err)

				return
			}

			var validationErr *shipping.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantPackages, validationErr.Packages)
			assert.Equal(t, tc.wantItems, validationErr.Items)
		})
	}
}
