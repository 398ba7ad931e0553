package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gearbase/infras/otel/mocks"
	artistMocks "gearbase/internal/domains/artist/mocks"
	"gearbase/internal/domains/artist/model"
	"gearbase/internal/domains/artist/service"
	gDto "gearbase/shared/dto"
)

func intPtr(v int) *int {
	return &v
}

func TestArtistService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := artistMocks.NewMockArtist(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "artists ordered by name",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Cond(func(p gDto.QueryParams) bool {
						return p.SortBy == "artists.name" && p.SortDir == gDto.SortDirAsc
					}), gomock.Any()).
					Return([]model.Artist{
						{ID: "a", Name: "Pink Floyd", FoundedYear: intPtr(1965)},
						{ID: "b", Name: "Jimi Hendrix"},
					}, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "empty table yields an empty slice, not nil",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Len(t, result, tt.wantLen)
		})
	}
}
