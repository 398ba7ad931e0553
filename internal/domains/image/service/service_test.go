package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gearbase/infras/otel/mocks"
	imageMocks "gearbase/internal/domains/image/mocks"
	"gearbase/internal/domains/image/model"
	"gearbase/internal/domains/image/service"
)

func imageFixtures(n int) []model.Image {
	images := make([]model.Image, n)
	for i := range images {
		images[i] = model.Image{
			ID:  fmt.Sprintf("images:%03d", i),
			Src: fmt.Sprintf("https://cdn.example.com/%03d.jpg", i),
		}
	}

	return images
}

func TestImageService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := imageMocks.NewMockImage(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		limit     int
		cursor    string
		setupMock func()
		wantErr   bool
		wantLen   int
		wantFirst string
	}{
		{
			name:   "no cursor returns from the start",
			limit:  5,
			cursor: "",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(10), nil)
			},
			wantLen:   5,
			wantFirst: "images:000",
		},
		{
			name:   "cursor starts strictly after the matching id",
			limit:  3,
			cursor: "images:004",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(10), nil)
			},
			wantLen:   3,
			wantFirst: "images:005",
		},
		{
			name:   "cursor at the last row yields an empty page",
			limit:  3,
			cursor: "images:009",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(10), nil)
			},
			wantLen: 0,
		},
		{
			name:   "unknown cursor is ignored",
			limit:  4,
			cursor: "images:nope",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(10), nil)
			},
			wantLen:   4,
			wantFirst: "images:000",
		},
		{
			name:   "explicit zero limit yields an empty page",
			limit:  0,
			cursor: "",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(70), nil)
			},
			wantLen: 0,
		},
		{
			name:   "negative limit falls back to the default",
			limit:  -1,
			cursor: "",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(70), nil)
			},
			wantLen:   60,
			wantFirst: "images:000",
		},
		{
			name:   "fewer rows than limit",
			limit:  100,
			cursor: "",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(imageFixtures(7), nil)
			},
			wantLen:   7,
			wantFirst: "images:000",
		},
		{
			name:   "empty table yields an empty slice, not nil",
			limit:  10,
			cursor: "",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name:   "repository error",
			limit:  10,
			cursor: "",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.limit, tt.cursor)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Len(t, result, tt.wantLen)

			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, result[0].ID)
			}
		})
	}
}
