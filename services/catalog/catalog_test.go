// File: wavecrest/services/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetService(t *testing.T) {
	svc, ok := GetService("pontoons")
	require.True(t, ok)
	assert.Equal(t, "Pontoon Rentals", svc.Name)
	assert.True(t, svc.Nested)
	assert.True(t, svc.SupportsAddOns)

	_, ok = GetService("submarines")
	assert.False(t, ok)
}

func TestListServicesOrder(t *testing.T) {
	services := ListServices()
	require.Len(t, services, 5)
	ids := make([]string, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}
	assert.Equal(t, []string{"pontoons", "bounce", "foam", "transport", "dj"}, ids)
}

func TestCapabilityFlags(t *testing.T) {
	bounce, _ := GetService("bounce")
	assert.True(t, bounce.SupportsCombinedOffer)
	assert.Equal(t, "foam", bounce.ComplementID)

	foam, _ := GetService("foam")
	assert.True(t, foam.SupportsCombinedOffer)
	assert.Equal(t, "bounce", foam.ComplementID)

	dj, _ := GetService("dj")
	assert.True(t, dj.ContactOnly)
	assert.Empty(t, dj.Options)

	transport, _ := GetService("transport")
	assert.True(t, transport.Nested)
	assert.False(t, transport.SupportsAddOns)
}

func TestGetPackagesFor(t *testing.T) {
	pkgs := GetPackagesFor("pontoons", "Blackhawk Pontoon")
	require.Len(t, pkgs, 3)
	assert.Equal(t, "4 Hours", pkgs[0].Name)
	assert.Equal(t, int64(50000), pkgs[0].Price)

	// Flat services and unknown options fall back to an empty slice.
	assert.NotNil(t, GetPackagesFor("bounce", "Ninja Bounce House, 8 hours"))
	assert.Empty(t, GetPackagesFor("bounce", "Ninja Bounce House, 8 hours"))
	assert.Empty(t, GetPackagesFor("pontoons", "Ghost Pontoon"))
	assert.Empty(t, GetPackagesFor("nope", "x"))
}

func TestGetPackagesForReturnsACopy(t *testing.T) {
	pkgs := GetPackagesFor("pontoons", "Silverwave Pontoon")
	require.NotEmpty(t, pkgs)
	pkgs[0].Price = 1

	fresh := GetPackagesFor("pontoons", "Silverwave Pontoon")
	assert.Equal(t, int64(45000), fresh[0].Price)
}

func TestGetOption(t *testing.T) {
	opt, ok := GetOption("foam", "Glow Foam Night, 2 hours")
	require.True(t, ok)
	assert.Equal(t, int64(27500), opt.Price)

	_, ok = GetOption("foam", "Mud Party")
	assert.False(t, ok)
	_, ok = GetOption("nope", "x")
	assert.False(t, ok)
}

func TestPreviewImage(t *testing.T) {
	img, ok := PreviewImage("Silverwave Pontoon")
	require.True(t, ok)
	assert.Equal(t, "/assets/rentals/silverwave.jpg", img)

	_, ok = PreviewImage("Unknown Option")
	assert.False(t, ok)
}
