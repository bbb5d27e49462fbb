package shipping_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomcrm/go-shipping-pipeline/pkg/shipping"
)

func TestPipelineErrorMessages(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	clean := &shipping.PipelineError{
		State: shipping.StateCreatingItems,
		Err:   &shipping.LineItemCreationError{Item: "hat", Err: cause},
	}
	assert.True(t, clean.CleanupComplete())
	assert.Contains(t, clean.Error(), "all created entities were cleaned up")
	assert.Contains(t, clean.Error(), `"hat"`)

	dirty := &shipping.PipelineError{
		State: shipping.StateCreatingItems,
		Err:   &shipping.LineItemCreationError{Item: "hat", Err: cause},
		Rollback: []*shipping.RollbackError{
			{Kind: shipping.KindPackageSpec, Name: "Box A", Err: cause},
		},
	}
	assert.False(t, dirty.CleanupComplete())
	assert.Contains(t, dirty.Error(), "manual cleanup may be required")
}

func TestPipelineErrorUnwrapsToCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := error(&shipping.PipelineError{
		State: shipping.StatePurchasingLabels,
		Err:   &shipping.LabelPurchaseError{Package: "Box A", Err: cause},
	})

	var labelErr *shipping.LabelPurchaseError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, "Box A", labelErr.Package)
	assert.ErrorIs(t, err, cause)

	// pkg/errors cause chains resolve through the typed errors too.
	assert.Equal(t, cause, errors.Cause(err))
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &shipping.ValidationError{
		Reason:   "the following packages have no items assigned",
		Packages: []string{"Box A", "Box B"},
	}
	assert.Equal(t,
		"the following packages have no items assigned: Box A, Box B; assign items to every package or remove empty packages",
		err.Error())
}
