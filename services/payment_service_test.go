package services

import (
	"testing"

	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodsListScope(t *testing.T) {
	db := newTestDB(t)
	nick := createUser(t, db, "nick", entity.RoleAdmin, "")
	thanos := createUser(t, db, "thanos", entity.RoleMember, "India")
	createPaymentMethod(t, db, nick.ID, "Admin Card", "1111")
	createPaymentMethod(t, db, thanos.ID, "Debit", "2222")
	svc := newPaymentService(db)

	own, err := svc.List(thanos.Identity(), false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "Debit", own[0].MethodName)

	// all=1 is an admin-only override; others fall back to their own rows.
	stillOwn, err := svc.List(thanos.Identity(), true)
	require.NoError(t, err)
	assert.Len(t, stillOwn, 1)

	everything, err := svc.List(nick.Identity(), true)
	require.NoError(t, err)
	assert.Len(t, everything, 2)
}

func TestAddPaymentMethodDefaults(t *testing.T) {
	db := newTestDB(t)
	carol := createUser(t, db, "carol", entity.RoleCustomer, "")
	svc := newPaymentService(db)

	id, err := svc.Add(carol.Identity(), &AddPaymentMethodIn{})
	require.NoError(t, err)

	var pm entity.PaymentMethod
	require.NoError(t, db.First(&pm, id).Error)
	assert.Equal(t, "Card", pm.MethodName)
	assert.Equal(t, "0000", pm.CardLast4)
	assert.Equal(t, carol.ID, pm.UserID)
}

func TestAddPaymentMethodForAnotherUser(t *testing.T) {
	db := newTestDB(t)
	nick := createUser(t, db, "nick", entity.RoleAdmin, "")
	thanos := createUser(t, db, "thanos", entity.RoleMember, "India")
	svc := newPaymentService(db)

	_, err := svc.Add(thanos.Identity(), &AddPaymentMethodIn{MethodName: "Sneaky", UserID: nick.ID})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	id, err := svc.Add(nick.Identity(), &AddPaymentMethodIn{MethodName: "Gift Card", CardLast4: "7777", UserID: thanos.ID})
	require.NoError(t, err)
	var pm entity.PaymentMethod
	require.NoError(t, db.First(&pm, id).Error)
	assert.Equal(t, thanos.ID, pm.UserID)

	_, err = svc.Add(nick.Identity(), &AddPaymentMethodIn{UserID: 999})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdatePaymentMethodOwnership(t *testing.T) {
	db := newTestDB(t)
	nick := createUser(t, db, "nick", entity.RoleAdmin, "")
	thanos := createUser(t, db, "thanos", entity.RoleMember, "India")
	nickPM := createPaymentMethod(t, db, nick.ID, "Admin Card", "1111")
	thanosPM := createPaymentMethod(t, db, thanos.ID, "Debit", "2222")
	svc := newPaymentService(db)

	err := svc.Update(thanos.Identity(), &UpdatePaymentMethodIn{ID: nickPM.ID, MethodName: "Hijack"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	err = svc.Update(thanos.Identity(), &UpdatePaymentMethodIn{ID: 999, MethodName: "Ghost"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, svc.Update(thanos.Identity(), &UpdatePaymentMethodIn{ID: thanosPM.ID, CardLast4: "3333"}))
	var pm entity.PaymentMethod
	require.NoError(t, db.First(&pm, thanosPM.ID).Error)
	assert.Equal(t, "3333", pm.CardLast4)
	assert.Equal(t, "Debit", pm.MethodName, "empty fields stay untouched")

	// Admin can edit anyone's method.
	require.NoError(t, svc.Update(nick.Identity(), &UpdatePaymentMethodIn{ID: thanosPM.ID, MethodName: "Mastercard"}))
	require.NoError(t, db.First(&pm, thanosPM.ID).Error)
	assert.Equal(t, "Mastercard", pm.MethodName)
}
