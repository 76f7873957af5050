package services

import (
	"context"
	"errors"
	"fmt"

	"leximax/models"
	"leximax/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	log "github.com/sirupsen/logrus"
)

// IdentityProvider verifies credentials. The local provider keeps bcrypt
// hashes on the user document; Cognito keeps them in the user pool.
type IdentityProvider interface {
	// Register returns the password hash to store on the user, if any.
	Register(ctx context.Context, username, email, password string) (string, error)
	Authenticate(ctx context.Context, user *models.User, password string) error
}

type LocalIdentityProvider struct{}

func (LocalIdentityProvider) Register(_ context.Context, _, _, password string) (string, error) {
	return utils.HashPassword(password)
}

func (LocalIdentityProvider) Authenticate(_ context.Context, user *models.User, password string) error {
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return models.ErrInvalidCredentials
	}
	return nil
}

// cognitoAPI is the part of the Cognito client the provider calls.
type cognitoAPI interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

type CognitoIdentityProvider struct {
	client          cognitoAPI
	appClientID     string
	appClientSecret string
}

func NewCognitoIdentityProvider(ctx context.Context, region, appClientID, appClientSecret string) (*CognitoIdentityProvider, error) {
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &CognitoIdentityProvider{
		client:          cognitoidentityprovider.NewFromConfig(cfg),
		appClientID:     appClientID,
		appClientSecret: appClientSecret,
	}, nil
}

func (p *CognitoIdentityProvider) Register(ctx context.Context, username, email, password string) (string, error) {
	input := &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(p.appClientID),
		Password:   aws.String(password),
		SecretHash: aws.String(utils.GenerateSecretHash(email, p.appClientID, p.appClientSecret)),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("nickname"), Value: aws.String(username)},
		},
	}
	if _, err := p.client.SignUp(ctx, input); err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return "", models.ErrEmailInUse
		}
		return "", fmt.Errorf("cognito sign up failed: %w", err)
	}
	return "", nil
}

func (p *CognitoIdentityProvider) Authenticate(ctx context.Context, user *models.User, password string) error {
	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(p.appClientID),
		AuthParameters: map[string]string{
			"USERNAME":    user.Email,
			"PASSWORD":    password,
			"SECRET_HASH": utils.GenerateSecretHash(user.Email, p.appClientID, p.appClientSecret),
		},
	}
	out, err := p.client.InitiateAuth(ctx, input)
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		if errors.As(err, &notAuthorized) {
			return models.ErrInvalidCredentials
		}
		log.WithError(err).WithField("email", user.Email).Warn("Cognito authentication failed")
		return fmt.Errorf("cognito authentication failed: %w", err)
	}
	if out.AuthenticationResult == nil {
		return models.ErrInvalidCredentials
	}
	return nil
}
