package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/atria-app/web-mobile-connect/internal/models"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

func TestStatusService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		clientName   string
		acknowledged bool
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful creation",
			clientName:   "C1",
			acknowledged: true,
		},
		{
			name:       "writer error",
			clientName: "C2",
			writerErr:  errors.New("insert error"),
			wantErr:    errors.New("insert error"),
		},
		{
			name:         "write not acknowledged",
			clientName:   "C3",
			acknowledged: false,
			wantErr:      services.ErrNotAcknowledged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockStatusCheckWriter(ctrl)
			mockReader := services.NewMockStatusCheckReader(ctrl)

			svc := services.NewStatusService(mockWriter, mockReader, nil)

			mockWriter.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				Return(tt.acknowledged, tt.writerErr)

			check, err := svc.Create(context.Background(), tt.clientName, nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, check)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, check)
				assert.Equal(t, tt.clientName, check.ClientName)
				assert.Equal(t, models.PlatformWeb, check.Platform)
				assert.Equal(t, models.StatusActive, check.Status)
				assert.NotEmpty(t, check.ID)
			}
		})
	}
}

func TestStatusService_Create_PublishesToKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockStatusCheckWriter(ctrl)
	mockReader := services.NewMockStatusCheckReader(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewStatusService(mockWriter, mockReader, mockKafka)

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(true, nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	check, err := svc.Create(context.Background(), "C1", nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, check)
}

func TestStatusService_Create_KafkaErrorDoesNotFailCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockStatusCheckWriter(ctrl)
	mockReader := services.NewMockStatusCheckReader(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewStatusService(mockWriter, mockReader, mockKafka)

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(true, nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	check, err := svc.Create(context.Background(), "C1", nil, nil)
	assert.NoError(t, err)
	assert.NotNil(t, check)
}

func TestStatusService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockStatusCheckWriter(ctrl)
	mockReader := services.NewMockStatusCheckReader(ctrl)

	svc := services.NewStatusService(mockWriter, mockReader, nil)

	checks := []models.StatusCheck{{ID: "s1"}, {ID: "s2"}}
	platform := models.PlatformMobile

	mockReader.EXPECT().
		List(gomock.Any(), &platform, int64(100)).
		Return(checks, nil)

	got, err := svc.List(context.Background(), &platform, 100)
	assert.NoError(t, err)
	assert.Equal(t, checks, got)

	mockReader.EXPECT().
		List(gomock.Any(), nil, int64(10)).
		Return(nil, errors.New("find error"))

	_, err = svc.List(context.Background(), nil, 10)
	assert.EqualError(t, err, "find error")
}
