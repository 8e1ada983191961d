package service

import (
	"fmt"
	"time"

	"chatbridge/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// UsageReport 使用报告数据
type UsageReport struct {
	StartDate    string
	EndDate      string
	TotalChats   int64
	TotalKeys    int64
	ActiveTopKey string
}

// SendUsageReportEmail 发送使用报告邮件
func (s *EmailService) SendUsageReportEmail(toEmail string, report UsageReport) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EMAIL_ENABLED=true")
	}

	subject := "【ChatBridge】使用报告"
	body := s.generateUsageReportBody(report)

	return s.sendEmail(toEmail, subject, body)
}

// generateUsageReportBody 生成使用报告邮件内容
func (s *EmailService) generateUsageReportBody(report UsageReport) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .stat-box { background: linear-gradient(135deg, #eff6ff, #dbeafe); border: 2px dashed #2563eb; border-radius: 12px; padding: 30px; margin: 30px 0; }
        .stat-box p { margin: 0 0 10px; color: #1d4ed8; font-weight: 600; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💬 ChatBridge</h1>
        </div>
        <div class="content">
            <p>您好！以下是 <strong>%s 至 %s</strong> 的接入使用报告：</p>
            <div class="stat-box">
                <p>对话总次数：%d</p>
                <p>涉及密钥数：%d</p>
                <p>最活跃密钥：%s</p>
            </div>
            <p>报告生成时间：%s</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© ChatBridge - 网站客服聊天桥接服务</p>
        </div>
    </div>
</body>
</html>
`, report.StartDate, report.EndDate, report.TotalChats, report.TotalKeys, report.ActiveTopKey,
		time.Now().Format("2006-01-02 15:04:05"))
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【ChatBridge】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— ChatBridge</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
