package category

import "culturefest-api/internal/logs"

type CategoryServiceAPI interface {
	List() ([]Category, error)
	Create(in CategoryInput) (*Category, error)
	Update(id string, in CategoryInput) (*Category, error)
	Delete(id string) (*Category, error)
}

var _ CategoryServiceAPI = (*CategoryService)(nil)

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
