package handlers

import (
	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/model"
)

func toAPITenant(t *model.Tenant) hubapi.Tenant {
	return hubapi.Tenant{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Status:    string(t.Status),
		Tier:      string(t.Tier),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toAPITenantList(tenants []*model.Tenant, count, skip, top int) hubapi.TenantList {
	value := make([]hubapi.Tenant, 0, len(tenants))
	for _, t := range tenants {
		value = append(value, toAPITenant(t))
	}

	return hubapi.TenantList{
		Value: value,
		Meta:  hubapi.ListMeta{Count: count, Skip: skip, Top: top},
	}
}

func toAPIUser(u *model.User) hubapi.User {
	return hubapi.User{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAPIUserList(users []*model.User, count, skip, top int) hubapi.UserList {
	value := make([]hubapi.User, 0, len(users))
	for _, u := range users {
		value = append(value, toAPIUser(u))
	}

	return hubapi.UserList{
		Value: value,
		Meta:  hubapi.ListMeta{Count: count, Skip: skip, Top: top},
	}
}

func toAPIWorkshop(w *model.Workshop) hubapi.Workshop {
	return hubapi.Workshop{
		ID:           w.ID.String(),
		Title:        w.Title,
		Description:  w.Description,
		InstructorID: w.InstructorID.String(),
		Published:    w.Published,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func toAPIWorkshopList(workshops []*model.Workshop, count, skip, top int) hubapi.WorkshopList {
	value := make([]hubapi.Workshop, 0, len(workshops))
	for _, w := range workshops {
		value = append(value, toAPIWorkshop(w))
	}

	return hubapi.WorkshopList{
		Value: value,
		Meta:  hubapi.ListMeta{Count: count, Skip: skip, Top: top},
	}
}

func toAPILibraryResource(r *model.LibraryResource) hubapi.LibraryResource {
	return hubapi.LibraryResource{
		ID:        r.ID.String(),
		Title:     r.Title,
		Kind:      string(r.Kind),
		URL:       r.URL,
		Published: r.Published,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toAPILibraryResourceList(resources []*model.LibraryResource, count, skip, top int) hubapi.LibraryResourceList {
	value := make([]hubapi.LibraryResource, 0, len(resources))
	for _, r := range resources {
		value = append(value, toAPILibraryResource(r))
	}

	return hubapi.LibraryResourceList{
		Value: value,
		Meta:  hubapi.ListMeta{Count: count, Skip: skip, Top: top},
	}
}
