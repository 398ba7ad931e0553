package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gearbase/infras/otel/mocks"
	brandMocks "gearbase/internal/domains/brand/mocks"
	"gearbase/internal/domains/brand/model"
	"gearbase/internal/domains/brand/service"
	gDto "gearbase/shared/dto"
)

func TestBrandService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := brandMocks.NewMockBrand(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "brands ordered by name",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Cond(func(p gDto.QueryParams) bool {
						return p.SortBy == "brands.name" && p.SortDir == gDto.SortDirAsc
					}), gomock.Any()).
					Return([]model.Brand{
						{ID: "a", Name: "Fender"},
						{ID: "b", Name: "Gibson"},
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
