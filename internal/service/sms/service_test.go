package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	api "github.com/twilio/twilio-go/rest/api/v2010"

	"missing-person-tracker/internal/domain"
)

type fakeSender struct {
	params *api.CreateMessageParams
	err    error
}

func (f *fakeSender) CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error) {
	f.params = params
	return &api.ApiV2010Message{}, f.err
}

func TestSendCaseFound(t *testing.T) {
	sender := &fakeSender{}
	svc := NewServiceWithSender(sender, "+15550000")

	mp := &domain.MissingPerson{FullName: "Jane Doe", CaseNumber: "MP2024000042"}
	require.NoError(t, svc.SendCaseFound(context.Background(), "+15551111", mp))

	require.NotNil(t, sender.params)
	assert.Equal(t, "+15551111", *sender.params.To)
	assert.Equal(t, "+15550000", *sender.params.From)
	assert.Equal(t, "Case MP2024000042: Jane Doe has been found. Log in for details.", *sender.params.Body)
}

func TestSendCaseFoundError(t *testing.T) {
	svc := NewServiceWithSender(&fakeSender{err: errors.New("boom")}, "+15550000")
	err := svc.SendCaseFound(context.Background(), "+1", &domain.MissingPerson{})
	assert.ErrorContains(t, err, "boom")
}
