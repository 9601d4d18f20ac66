// Package crmsvc - Service khách hàng của salon (crm_clients).
package crmsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	crmmodels "salon_os/internal/api/crm/models"
	basesvc "salon_os/internal/api/base/service"
	"salon_os/internal/common"
	"salon_os/internal/global"
)

// ClientService xử lý CRUD khách hàng.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Client]
}

// NewClientService tạo ClientService mới.
func NewClientService() (*ClientService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Clients, common.ErrNotFound)
	}
	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Client](coll),
	}, nil
}

// TouchLastVisit cập nhật thời điểm ghé gần nhất của khách (gọi khi booking hoàn tất).
func (s *ClientService) TouchLastVisit(ctx context.Context, clientID primitive.ObjectID, visitedAt int64) error {
	if visitedAt <= 0 {
		visitedAt = time.Now().UnixMilli()
	}
	_, err := s.UpdateById(ctx, clientID, bson.M{"$set": bson.M{"lastVisit": visitedAt}})
	return err
}
