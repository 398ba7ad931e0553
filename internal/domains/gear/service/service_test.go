package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gearbase/infras/otel/mocks"
	gearMocks "gearbase/internal/domains/gear/mocks"
	"gearbase/internal/domains/gear/model"
	"gearbase/internal/domains/gear/model/dto"
	"gearbase/internal/domains/gear/service"
	gDto "gearbase/shared/dto"
	"gearbase/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func TestGearService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := gearMocks.NewMockGear(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateGearRequest
		setupMock func()
		wantErr   bool
		wantSlug  string
	}{
		{
			name: "successful creation with resolved brand",
			req: dto.CreateGearRequest{
				Name:      "Big Muff Pi",
				Type:      model.TypeEffect,
				BrandName: strPtr("Electro-Harmonix"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), strPtr("Electro-Harmonix"), nil).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gear{
						ID:      "generated-id",
						Name:    "Big Muff Pi",
						Slug:    "big-muff-pi",
						Type:    model.TypeEffect,
						BrandID: strPtr("brand-id"),
					}, nil)
			},
			wantErr:  false,
			wantSlug: "big-muff-pi",
		},
		{
			// An unresolved brand name leaves the foreign key null; the
			// insert itself still succeeds.
			name: "unknown brand name leaves a null foreign key",
			req: dto.CreateGearRequest{
				Name:      "Mystery Fuzz",
				Type:      model.TypeEffect,
				BrandName: strPtr("No Such Brand"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), strPtr("No Such Brand"), nil).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gear{
						ID:   "generated-id",
						Name: "Mystery Fuzz",
						Slug: "mystery-fuzz",
						Type: model.TypeEffect,
					}, nil)
			},
			wantErr:  false,
			wantSlug: "mystery-fuzz",
		},
		{
			name: "insert error",
			req: dto.CreateGearRequest{
				Name: "Broken",
				Type: model.TypeGuitar,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), nil, nil).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSlug, result.Slug)
			}
		})
	}
}

func TestGearService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := gearMocks.NewMockGear(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantTotal  int
		wantPages  int
		wantGearAt map[int]string
	}{
		{
			name:   "ordering is forced to name ascending",
			params: gDto.QueryParams{Page: 1, Limit: 20, SortBy: "description", SortDir: gDto.SortDirDesc},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Cond(func(p gDto.QueryParams) bool {
						return p.SortBy == "gear.name" && p.SortDir == gDto.SortDirAsc
					}), gomock.Any()).
					Return([]model.Gear{
						{ID: "a", Name: "Jazzmaster", Slug: "jazzmaster", Type: model.TypeGuitar},
						{ID: "b", Name: "Stratocaster", Slug: "stratocaster", Type: model.TypeGuitar},
					}, nil)
			},
			wantErr:    false,
			wantTotal:  2,
			wantPages:  1,
			wantGearAt: map[int]string{0: "jazzmaster", 1: "stratocaster"},
		},
		{
			name:   "empty result keeps an empty slice",
			params: gDto.QueryParams{Page: 1, Limit: 20},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr:   false,
			wantTotal: 0,
			wantPages: 1,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Page: 1, Limit: 20},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalData)
			assert.Equal(t, tt.wantPages, result.TotalPage)
			assert.NotNil(t, result.Gear)

			for i, slug := range tt.wantGearAt {
				assert.Equal(t, slug, result.Gear[i].Slug)
			}
		})
	}
}

func TestGearService_GetBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := gearMocks.NewMockGear(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		slug      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "slug found",
			slug: "stratocaster",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gear{ID: "a", Name: "Stratocaster", Slug: "stratocaster", Type: model.TypeGuitar}, nil)
			},
			wantErr: false,
			wantID:  "a",
		},
		{
			name: "no row yields not found",
			slug: "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gear{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			slug: "stratocaster",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gear{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetBySlug(context.Background(), tt.slug)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}
