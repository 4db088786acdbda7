package todo

import (
	"errors"

	"github.com/google/uuid"
)

// Item は Todo コレクションの 1 レコード（集約ルート）。
type Item struct {
	ID        string
	Name      string
	Completed bool
}

// SeedItemName は空のストアに最初に入れるデフォルト Item の名前。
const SeedItemName = "Item1"

// ---- ドメインエラー（sentinel error） ----

var (
	// 名前が空のときに使う共通エラー。
	ErrEmptyName = errors.New("todo item name must not be empty")

	// ID が空など不正なときに使う共通エラー。
	ErrInvalidID = errors.New("todo item id must not be empty")
)

// ---- ファクトリ / バリデーション ----

// NewID は Item 用の ID を発行する（UUIDv4, 128bit ランダム）。
// 衝突チェックはしない。
func NewID() string {
	return uuid.NewString()
}

// NewItem は「新規作成用」のコンストラクタ。
// ID はここで採番し、Completed は必ず false から始まる。
func NewItem(name string) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Item{
		ID:        NewID(),
		Name:      name,
		Completed: false,
	}, nil
}

// NewSeedItem は初回起動時に投入するデフォルト Item を作る。
func NewSeedItem() *Item {
	return &Item{
		ID:        NewID(),
		Name:      SeedItemName,
		Completed: false,
	}
}

// Validate は永続化済み Item の不変条件（ID・名前が空でない）をチェックする。
func (i *Item) Validate() error {
	if err := ValidateID(i.ID); err != nil {
		return err
	}
	if i.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Clone はストアの中身を呼び出し側から守るためのコピーを返す。
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

// ValidateID は ID まわりの共通バリデーション。
func ValidateID(id string) error {
	if id == "" {
		return ErrInvalidID
	}
	return nil
}
