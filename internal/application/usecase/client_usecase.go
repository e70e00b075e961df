package usecase

import (
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
)

// ClientUseCase aplica reglas de negocio para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente nuevo. Nombre vacío → domain.ErrInvalidInput sin
// persistir nada; el teléfono es texto libre y puede quedar vacío.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		Name:  name,
		Phone: strings.TrimSpace(in.Phone),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetByID obtiene un cliente por ID. domain.ErrNotFound si no existe.
func (uc *ClientUseCase) GetByID(id int) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// List lista todos los clientes en orden de registro.
func (uc *ClientUseCase) List() (*dto.ClientListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *clientToResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un cliente. domain.ErrNotFound si no existe. Los IDs de los
// demás clientes no cambian y el ID eliminado no se reutiliza.
func (uc *ClientUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}
