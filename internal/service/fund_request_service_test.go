package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fundRequestFixture struct {
	svc      *FundRequestService
	profiles *fakeSmeProfileRepo
	requests *fakeFundRequestRepo
	smes     *SmeProfileService
}

func newFundRequestFixture(t *testing.T) *fundRequestFixture {
	t.Helper()
	f := &fundRequestFixture{
		profiles: newFakeSmeProfileRepo(),
		requests: newFakeFundRequestRepo(),
	}
	f.svc = NewFundRequestService(f.requests, f.profiles, nil)
	f.smes = NewSmeProfileService(f.profiles, nil)
	return f
}

func TestFundRequestRequiresProfile(t *testing.T) {
	f := newFundRequestFixture(t)

	_, err := f.svc.Create(context.Background(), smeClaims("sme-1"), "Seed round", "Buy equipment", 50000)
	requireDomainStatus(t, err, http.StatusNotFound)
	assert.Contains(t, err.Error(), "Kindly create an SME profile")
}

func TestFundRequestRequiresVerifiedProfile(t *testing.T) {
	f := newFundRequestFixture(t)
	_, err := f.smes.Create(context.Background(), smeClaims("sme-1"), profileInput("Ada Farms", 1111, 2222))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), smeClaims("sme-1"), "Seed round", "Buy equipment", 50000)
	requireDomainStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "currently UNVERIFIED")
}

func TestFundRequestCreate(t *testing.T) {
	f := newFundRequestFixture(t)
	profile, err := f.smes.Create(context.Background(), smeClaims("sme-1"), profileInput("Ada Farms", 1111, 2222))
	require.NoError(t, err)
	_, err = f.smes.Verify(context.Background(), profile.ID, adminClaims())
	require.NoError(t, err)

	request, err := f.svc.Create(context.Background(), smeClaims("sme-1"), "Seed round", "Buy equipment", 50000)
	require.NoError(t, err)
	assert.Equal(t, "sme-1", request.SmeID)
	assert.Equal(t, 50000.0, request.Amount)
}

func TestFundRequestSurvivesLaterUnverify(t *testing.T) {
	// The verification gate applies at creation time only; existing requests
	// stay readable after the profile is unverified.
	f := newFundRequestFixture(t)
	profile, err := f.smes.Create(context.Background(), smeClaims("sme-1"), profileInput("Ada Farms", 1111, 2222))
	require.NoError(t, err)
	_, err = f.smes.Verify(context.Background(), profile.ID, adminClaims())
	require.NoError(t, err)

	request, err := f.svc.Create(context.Background(), smeClaims("sme-1"), "Seed round", "Buy equipment", 50000)
	require.NoError(t, err)

	_, err = f.smes.Unverify(context.Background(), profile.ID, adminClaims())
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, got.ID)

	// New requests are blocked again.
	_, err = f.svc.Create(context.Background(), smeClaims("sme-1"), "Series A", "Expand", 100000)
	requireDomainStatus(t, err, http.StatusBadRequest)
}

func TestFundRequestListBySme(t *testing.T) {
	f := newFundRequestFixture(t)
	profile, err := f.smes.Create(context.Background(), smeClaims("sme-1"), profileInput("Ada Farms", 1111, 2222))
	require.NoError(t, err)
	_, err = f.smes.Verify(context.Background(), profile.ID, adminClaims())
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), smeClaims("sme-1"), "Seed round", "Buy equipment", 50000)
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), smeClaims("sme-1"), "Inventory", "Restock", 20000)
	require.NoError(t, err)

	requests, err := f.svc.ListBySme(context.Background(), "sme-1")
	require.NoError(t, err)
	assert.Len(t, requests, 2)

	empty, err := f.svc.ListBySme(context.Background(), "sme-2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFundRequestGetUnknown(t *testing.T) {
	f := newFundRequestFixture(t)

	_, err := f.svc.Get(context.Background(), "missing-id")
	requireDomainStatus(t, err, http.StatusNotFound)
	assert.Contains(t, err.Error(), "does not exist")
}
