package external_services

import "html/template"

var verificationEmailTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Verify Your Echo Account</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1da1f2; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .button { background: #1da1f2; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to Echo!</h1>
    </div>
    <div class="content">
      <h2>Hi {{.DisplayName}}!</h2>
      <p>Thank you for signing up for Echo. To complete your registration, please verify your email address by clicking the button below:</p>
      <a href="{{.URL}}" class="button">Verify Email Address</a>
      <p>If the button doesn't work, you can also copy and paste this link into your browser:</p>
      <p><a href="{{.URL}}">{{.URL}}</a></p>
      <p>This verification link will expire in 24 hours.</p>
      <p>If you didn't create an account with Echo, you can safely ignore this email.</p>
    </div>
    <div class="footer">
      <p>&copy; 2025 Echo. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var passwordResetEmailTmpl = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Reset Your Echo Password</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #1da1f2; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .button { background: #1da1f2; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 20px 0; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Password Reset Request</h1>
    </div>
    <div class="content">
      <h2>Hi {{.DisplayName}}!</h2>
      <p>We received a request to reset your Echo account password. Click the button below to reset your password:</p>
      <a href="{{.URL}}" class="button">Reset Password</a>
      <p>If the button doesn't work, you can also copy and paste this link into your browser:</p>
      <p><a href="{{.URL}}">{{.URL}}</a></p>
      <p>This password reset link will expire in 1 hour.</p>
      <p>If you didn't request a password reset, you can safely ignore this email.</p>
    </div>
    <div class="footer">
      <p>&copy; 2025 Echo. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))
