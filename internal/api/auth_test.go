package api

import (
	"context"
	"net/http"
	"testing"

	"profix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	creds := models.LoginRequest{Email: "asha@gmail.com", Password: "Secret#1"}

	t.Run("User", func(t *testing.T) {
		c, rec := newTestBackend(t, http.StatusOK, `{"success":true,"message":"Login successful","user":{"id":"3","full_name":"Asha","email":"asha@gmail.com","phone":"9876543210"}}`)
		u, err := c.LoginUser(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, models.ID(3), u.ID)
		assert.Equal(t, "/"+RouteUserLogin, rec.Path)
		assert.JSONEq(t, `{"email":"asha@gmail.com","password":"Secret#1"}`, string(rec.Body))
	})

	t.Run("Provider", func(t *testing.T) {
		c, _ := newTestBackend(t, http.StatusOK, `{"success":true,"message":"Login successful","provider":{"id":7,"full_name":"Ravi","email":"r@gmail.com","phone":"1","service_id":2,"hourly_rate":300}}`)
		p, err := c.LoginProvider(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, models.ID(7), p.ID)
		assert.Equal(t, models.Num(300), p.HourlyRate)
	})

	t.Run("Admin", func(t *testing.T) {
		c, _ := newTestBackend(t, http.StatusOK, `{"success":true,"message":"ok","admin":{"id":1,"full_name":"Root","email":"admin@gmail.com"}}`)
		a, err := c.LoginAdmin(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, "Root", a.FullName)
	})

	t.Run("PendingApproval", func(t *testing.T) {
		c, _ := newTestBackend(t, http.StatusOK, `{"success":false,"message":"Your account is pending approval"}`)
		p, err := c.LoginProvider(ctx, creds)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrBusiness)
		assert.Equal(t, "Your account is pending approval", UserMessage(err))
	})
}

func TestRegister(t *testing.T) {
	c, rec := newTestBackend(t, http.StatusOK, `{"success":true,"message":"Registration successful"}`)
	msg, err := c.RegisterProvider(context.Background(), models.ProviderRegisterRequest{
		FullName: "Ravi Kumar", Email: "ravi@gmail.com", Phone: "9876543210", Password: "Secret#1",
		ServiceID: 2, HourlyRate: 350, ExperienceYears: 4, Pincode: "600001", Aadhaar: "123412341234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Registration successful", msg)

	body := decodeBody(t, rec)
	for _, key := range []string{"full_name", "email", "phone", "password", "service_id", "hourly_rate", "experience_years", "aadhaar"} {
		assert.Contains(t, body, key)
	}
	assert.NotContains(t, body, "fullName")
}
