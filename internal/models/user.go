package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfilePic is stored whenever an operator account is created
// without a picture.
const DefaultProfilePic = "https://res.cloudinary.com/dxfmw4nch/image/upload/v1753882410/profilePics/muxts6jedfnjupzdqzgf.jpg"

// User is an internal operator account, not a clinical entity. Password
// only ever holds a bcrypt hash; the repository hashes the plaintext on
// every create or password update.
type User struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName                string             `bson:"userName" json:"userName"`
	Email                   string             `bson:"email" json:"email"`
	Password                string             `bson:"password" json:"-"` // Hide from JSON responses
	ProfilePic              string             `bson:"profilePic" json:"profilePic"`
	Gender                  string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Role                    string             `bson:"role" json:"role"`
	IsLock                  bool               `bson:"isLock" json:"isLock"`
	DateOfBirth             *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	PhoneNumber             string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	OTP                     string             `bson:"otp,omitempty" json:"-"`
	OTPExpiresAt            *time.Time         `bson:"otpExpiresAt,omitempty" json:"-"`
	ResetPasswordOTP        string             `bson:"resetPasswordOTP,omitempty" json:"-"`
	ResetPasswordOTPExpires *time.Time         `bson:"resetPasswordOTPExpires,omitempty" json:"-"`
	PasswordChangedAt       *time.Time         `bson:"passwordChangedAt,omitempty" json:"-"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserCreateRequest is the registration payload.
type UserCreateRequest struct {
	UserName        string `json:"userName" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,min=3,max=50,email"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Gender          string `json:"gender" validate:"omitempty,gender"`
	Role            string `json:"role" validate:"omitempty,role"`
	DateOfBirth     *Date  `json:"dateOfBirth"`
	PhoneNumber     string `json:"phoneNumber"`
	ProfilePic      string `json:"profilePic" validate:"omitempty,url"`
}

// ToUser builds the persistable record with defaults applied. Password is
// carried as plaintext here; the repository hashes it before insert.
func (r *UserCreateRequest) ToUser() *User {
	u := &User{
		UserName:    r.UserName,
		Email:       r.Email,
		Password:    r.Password,
		Gender:      r.Gender,
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
		ProfilePic:  r.ProfilePic,
	}
	if r.DateOfBirth != nil {
		dob := r.DateOfBirth.Time
		u.DateOfBirth = &dob
	}
	if u.Role == "" {
		u.Role = "admin"
	}
	if u.ProfilePic == "" {
		u.ProfilePic = DefaultProfilePic
	}
	return u
}

// UserUpdateRequest is the operator profile update payload.
type UserUpdateRequest struct {
	UserName    *string `json:"userName" validate:"omitempty,min=3,max=50"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=100"`
	Gender      *string `json:"gender" validate:"omitempty,gender"`
	Role        *string `json:"role" validate:"omitempty,role"`
	IsLock      *bool   `json:"isLock"`
	DateOfBirth *Date   `json:"dateOfBirth"`
	PhoneNumber *string `json:"phoneNumber"`
	ProfilePic  *string `json:"profilePic" validate:"omitempty,url"`
}

// Fields returns the partial update as a $set document. A password value in
// the result is still plaintext; the repository hashes it before persisting.
func (r *UserUpdateRequest) Fields() bson.M {
	set := bson.M{}
	if r.UserName != nil {
		set["userName"] = *r.UserName
	}
	if r.Password != nil {
		set["password"] = *r.Password
	}
	if r.Gender != nil {
		set["gender"] = *r.Gender
	}
	if r.Role != nil {
		set["role"] = *r.Role
	}
	if r.IsLock != nil {
		set["isLock"] = *r.IsLock
	}
	if r.DateOfBirth != nil {
		set["dateOfBirth"] = r.DateOfBirth.Time
	}
	if r.PhoneNumber != nil {
		set["phoneNumber"] = *r.PhoneNumber
	}
	if r.ProfilePic != nil {
		set["profilePic"] = *r.ProfilePic
	}
	return set
}
