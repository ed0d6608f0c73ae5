// Package mongostore MongoDB 기반의 ProductSource 구현입니다.
//
// 연결은 프로세스 수명 동안 최대 한 번만 수립되어 재사용됩니다. 요청 처리
// 중에 지연 연결이 일어날 수 있으므로, 동시 호출이 중복 연결을 만들지 않도록
// singleflight로 조율합니다.
package mongostore

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	applog "github.com/darkkaiser/catalog-server/pkg/log"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// listProjection 목록 조회시 반환할 필드 집합입니다.
// 상세 설명 본문 등 목록에 불필요한 대용량 필드를 제외합니다.
var listProjection = bson.M{
	"_id":             1,
	"id":              1,
	"ID":              1,
	"Type":            1,
	"SKU":             1,
	"Name":            1,
	"Published":       1,
	"Is featured?":    1,
	"In stock?":       1,
	"Categories":      1,
	"category":        1,
	"Images":          1,
	"heroImage":       1,
	"short":           1,
	"descriptionText": 1,
	"specs":           1,
	"detailRows":      1,
	"features":        1,
	"datasheet":       1,
	"createdAt":       1,
}

// categoryProjection 카테고리 집계 조회시 반환할 필드 집합입니다.
var categoryProjection = bson.M{
	"Categories": 1,
	"category":   1,
}

// Config MongoDB 스토어 설정입니다.
type Config struct {
	// URI MongoDB 연결 문자열
	URI string

	// Database 데이터베이스명
	Database string

	// Collection 상품 컬렉션명
	Collection string

	// QueryTimeout 상품 목록 조회 제한 시간
	QueryTimeout time.Duration

	// CategoryTimeout 카테고리/그룹 조회 제한 시간
	CategoryTimeout time.Duration
}

// Store MongoDB 기반 ProductSource 구현체입니다.
type Store struct {
	config Config

	client    atomic.Pointer[mongo.Client]
	connectSF singleflight.Group
}

var _ storage.ProductSource = (*Store)(nil)

// New MongoDB 스토어를 생성합니다. 실제 연결은 첫 조회 시점까지 지연됩니다.
func New(config Config) *Store {
	return &Store{config: config}
}

// Connected 연결이 수립되어 있는지 여부를 반환합니다.
func (s *Store) Connected() bool {
	return s.client.Load() != nil
}

// Ensure 연결을 보장합니다. 이미 연결되어 있으면 아무 일도 하지 않으며,
// 동시 호출시에도 연결 시도는 한 번만 일어납니다.
func (s *Store) Ensure(ctx context.Context) error {
	if s.Connected() {
		return nil
	}

	_, err, _ := s.connectSF.Do("connect", func() (any, error) {
		if s.Connected() {
			return nil, nil
		}

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.config.URI))
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.StoreUnavailable, "MongoDB 연결에 실패하였습니다.")
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, apperrors.Wrap(err, apperrors.StoreUnavailable, "MongoDB 연결 확인에 실패하였습니다.")
		}

		s.client.Store(client)

		applog.WithComponent("mongostore").WithFields(applog.Fields{
			"database":   s.config.Database,
			"collection": s.config.Collection,
		}).Info("MongoDB 연결이 수립되었습니다.")

		return nil, nil
	})
	return err
}

// Close 연결을 종료합니다.
func (s *Store) Close(ctx context.Context) error {
	client := s.client.Swap(nil)
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Find 기준 조건에 일치하는 상품 레코드 목록을 반환합니다.
func (s *Store) Find(ctx context.Context, criteria catalog.Criteria) ([]catalog.Record, error) {
	opts := options.Find().
		SetProjection(listProjection).
		SetMaxTime(s.config.QueryTimeout)

	return s.find(ctx, buildFilter(criteria), opts)
}

// FindByNameOrSKU 상품명/SKU 부분 일치로 상품 레코드 목록을 반환합니다.
func (s *Store) FindByNameOrSKU(ctx context.Context, query string) ([]catalog.Record, error) {
	filter := bson.M{}
	if query != "" {
		regex := containsRegex(query)
		filter["$or"] = bson.A{
			bson.M{catalog.FieldName: regex},
			bson.M{catalog.FieldSKU: regex},
		}
	}

	opts := options.Find().
		SetProjection(listProjection).
		SetMaxTime(s.config.CategoryTimeout)

	return s.find(ctx, filter, opts)
}

// FindCategories 카테고리 필드만 담긴 전체 레코드 목록을 반환합니다.
func (s *Store) FindCategories(ctx context.Context) ([]catalog.Record, error) {
	opts := options.Find().
		SetProjection(categoryProjection).
		SetMaxTime(s.config.CategoryTimeout)

	return s.find(ctx, bson.M{}, opts)
}

// FindByID 식별자 후보와 일치하는 상품 레코드를 반환합니다.
//
// 후보는 순서대로 _id(유효한 ObjectID인 경우), id, SKU, 그리고
// 경로 파라미터가 숫자로 해석되는 경우 숫자형 ID입니다.
func (s *Store) FindByID(ctx context.Context, id string) (catalog.Record, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}

	candidates := bson.A{}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		candidates = append(candidates, bson.M{catalog.FieldMongoID: oid})
	}
	candidates = append(candidates,
		bson.M{catalog.FieldID: id},
		bson.M{catalog.FieldSKU: id},
	)
	if numeric, err := strconv.ParseFloat(id, 64); err == nil {
		candidates = append(candidates, bson.M{catalog.FieldNumericID: numeric})
	} else {
		candidates = append(candidates, bson.M{catalog.FieldNumericID: id})
	}

	var record catalog.Record
	err := s.collection().FindOne(ctx, bson.M{"$or": candidates}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, storage.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.StoreUnavailable, "상품 조회에 실패하였습니다.")
	}
	return record, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]catalog.Record, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}

	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.StoreUnavailable, "상품 목록 조회에 실패하였습니다.")
	}
	var records []catalog.Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, apperrors.Wrap(err, apperrors.StoreUnavailable, "상품 목록 디코딩에 실패하였습니다.")
	}
	return records, nil
}

func (s *Store) collection() *mongo.Collection {
	return s.client.Load().Database(s.config.Database).Collection(s.config.Collection)
}
