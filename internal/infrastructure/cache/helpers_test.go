package cache

import (
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

func snapshotFor(babyID, tz string) *livedata.Snapshot {
	return &livedata.Snapshot{Baby: &family.Baby{Base: records.Base{ID: babyID}}, TimeZone: tz}
}
