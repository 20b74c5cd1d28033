package models

// EntityKind 归属校验支持的实体类型
type EntityKind string

const (
	KindUser         EntityKind = "user"
	KindMemory       EntityKind = "memory"
	KindComment      EntityKind = "comment"
	KindLike         EntityKind = "like"
	KindNotification EntityKind = "notification"
)

// Owned 可以解析出归属用户的实体
type Owned interface {
	OwnerID() uint64
}

var (
	_ Owned = User{}
	_ Owned = Memory{}
	_ Owned = Comment{}
	_ Owned = Like{}
	_ Owned = Notification{}
)

// All 迁移用的全部模型
func All() []any {
	return []any{
		&User{},
		&Memory{},
		&Follow{},
		&Like{},
		&Comment{},
		&Notification{},
	}
}
