package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"backend/internal/app/dto"
)

func listPath(resource string) string {
	return "/api/v1/" + resource + "/"
}

func itemPath(resource string, id uint) string {
	return fmt.Sprintf("/api/v1/%s/%d", resource, id)
}

// ============ Партнёры ============

func (c *Client) Partners(ctx context.Context) ([]dto.PartnerResponse, error) {
	var out []dto.PartnerResponse
	err := c.getJSON(ctx, listPath("partners"), &out)
	return out, err
}

func (c *Client) Partner(ctx context.Context, id uint) (*dto.PartnerResponse, error) {
	var out dto.PartnerResponse
	if err := c.getJSON(ctx, itemPath("partners", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	var out dto.PartnerResponse
	err := c.call(ctx, http.MethodPost, listPath("partners"), req, &out, listPath("partners"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePartner(ctx context.Context, id uint, req dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	var out dto.PartnerResponse
	err := c.call(ctx, http.MethodPut, itemPath("partners", id), req, &out,
		listPath("partners"), itemPath("partners", id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePartner(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, itemPath("partners", id), nil, nil,
		listPath("partners"), itemPath("partners", id))
}

// ============ Клиенты ============

func (c *Client) Clients(ctx context.Context) ([]dto.ClientResponse, error) {
	var out []dto.ClientResponse
	err := c.getJSON(ctx, listPath("clients"), &out)
	return out, err
}

func (c *Client) ClientByID(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	var out dto.ClientResponse
	if err := c.getJSON(ctx, itemPath("clients", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	var out dto.ClientResponse
	err := c.call(ctx, http.MethodPost, listPath("clients"), req, &out, listPath("clients"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	var out dto.ClientResponse
	err := c.call(ctx, http.MethodPut, itemPath("clients", id), req, &out,
		listPath("clients"), itemPath("clients", id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, itemPath("clients", id), nil, nil,
		listPath("clients"), itemPath("clients", id))
}

// ============ Лицензии ============

func (c *Client) Licenses(ctx context.Context) ([]dto.LicenseResponse, error) {
	var out []dto.LicenseResponse
	err := c.getJSON(ctx, listPath("licenses"), &out)
	return out, err
}

func (c *Client) License(ctx context.Context, id uint) (*dto.LicenseResponse, error) {
	var out dto.LicenseResponse
	if err := c.getJSON(ctx, itemPath("licenses", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLicense(ctx context.Context, req dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	var out dto.LicenseResponse
	err := c.call(ctx, http.MethodPost, listPath("licenses"), req, &out, listPath("licenses"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLicense(ctx context.Context, id uint, req dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	var out dto.LicenseResponse
	err := c.call(ctx, http.MethodPut, itemPath("licenses", id), req, &out,
		listPath("licenses"), itemPath("licenses", id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLicense(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, itemPath("licenses", id), nil, nil,
		listPath("licenses"), itemPath("licenses", id))
}

// ============ Устройства ============

func (c *Client) Devices(ctx context.Context) ([]dto.DeviceResponse, error) {
	var out []dto.DeviceResponse
	err := c.getJSON(ctx, listPath("devices"), &out)
	return out, err
}

func (c *Client) Device(ctx context.Context, id uint) (*dto.DeviceResponse, error) {
	var out dto.DeviceResponse
	if err := c.getJSON(ctx, itemPath("devices", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDevice(ctx context.Context, req dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	var out dto.DeviceResponse
	err := c.call(ctx, http.MethodPost, listPath("devices"), req, &out, listPath("devices"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDevice(ctx context.Context, id uint, req dto.UpdateDeviceRequest) (*dto.DeviceResponse, error) {
	var out dto.DeviceResponse
	err := c.call(ctx, http.MethodPut, itemPath("devices", id), req, &out,
		listPath("devices"), itemPath("devices", id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDevice(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, itemPath("devices", id), nil, nil,
		listPath("devices"), itemPath("devices", id))
}

// ============ Обновления ПО ============

func (c *Client) Updates(ctx context.Context) ([]dto.UpdateResponse, error) {
	var out []dto.UpdateResponse
	err := c.getJSON(ctx, listPath("updates"), &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id uint) (*dto.UpdateResponse, error) {
	var out dto.UpdateResponse
	if err := c.getJSON(ctx, itemPath("updates", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUpdate(ctx context.Context, req dto.CreateUpdateRequest) (*dto.UpdateResponse, error) {
	var out dto.UpdateResponse
	err := c.call(ctx, http.MethodPost, listPath("updates"), req, &out, listPath("updates"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUpdate(ctx context.Context, id uint, req dto.UpdateUpdateRequest) (*dto.UpdateResponse, error) {
	var out dto.UpdateResponse
	err := c.call(ctx, http.MethodPut, itemPath("updates", id), req, &out,
		listPath("updates"), itemPath("updates", id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUpdate(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, itemPath("updates", id), nil, nil,
		listPath("updates"), itemPath("updates", id))
}

// ============ Пользователи ============

func (c *Client) Users(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	err := c.getJSON(ctx, listPath("users"), &out)
	return out, err
}

func (c *Client) User(ctx context.Context, id uint) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.getJSON(ctx, itemPath("users", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.call(ctx, http.MethodPost, listPath("users"), req, &out, listPath("users"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.call(ctx, http.MethodPut, itemPath("users", id), req, &out,
		listPath("users"), itemPath("users", id))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, itemPath("users", id), nil, nil,
		listPath("users"), itemPath("users", id))
}
