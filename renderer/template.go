package renderer

// pageTemplate is the complete bridge-page document. The document is
// self-contained: inline styles, inline tracking shim, no dependency on the
// builder at render time.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}">

    <!-- SEO Meta Tags -->
    <meta property="og:title" content="{{.Headline}}">
    <meta property="og:description" content="{{.Subheadline}}">
    <meta property="og:type" content="website">
    <meta property="og:url" content="{{.PageURL}}">

    <!-- Fonts -->
    <link href="{{.FontsHref}}" rel="stylesheet">

    <!-- Analytics -->
    <script>
      function trackConversion(pageId, eventType, eventData) {
        var entry = {
          pageId: pageId,
          eventType: eventType,
          eventData: eventData,
          timestamp: Date.now(),
          userAgent: navigator.userAgent,
          referrer: document.referrer
        };

        var analytics = JSON.parse(localStorage.getItem('bridgePageAnalytics') || '[]');
        analytics.push(entry);
        localStorage.setItem('bridgePageAnalytics', JSON.stringify(analytics));
{{if .AnalyticsEndpoint}}
        fetch('{{.AnalyticsEndpoint}}', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify(entry)
        }).catch(function () {});
{{end}}      }

      document.addEventListener('DOMContentLoaded', function() {
        trackConversion('{{.PageID}}', 'page_view', {});
      });
    </script>

    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: '{{.BodyFont}}', sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, {{.PrimaryColor}}15 0%, {{.SecondaryColor}}15 100%);
            min-height: 100vh;
        }

        .container {
            max-width: 800px;
            margin: 0 auto;
            padding: 40px 20px;
        }

        .header {
            text-align: center;
            margin-bottom: 40px;
        }

        .headline {
            font-family: '{{.HeadingFont}}', sans-serif;
            font-size: 2.5rem;
            font-weight: 700;
            color: {{.PrimaryColor}};
            margin-bottom: 20px;
            line-height: 1.2;
        }

        .subheadline {
            font-size: 1.25rem;
            color: {{.SecondaryColor}};
            margin-bottom: 30px;
            font-weight: 500;
        }

        .hero-video-container {
            margin: 30px 0;
            background: white;
            padding: 20px;
            border-radius: 15px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
        }

        .video-wrapper {
            width: 100%;
            display: flex;
            justify-content: center;
            align-items: center;
        }

        .video-wrapper iframe,
        .video-wrapper video {
            max-width: 100%;
            height: auto;
            border-radius: 10px;
        }

        .content {
            background: white;
            padding: 40px;
            border-radius: 15px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
            margin-bottom: 40px;
        }

        .paragraph {
            font-size: 1.1rem;
            margin-bottom: 25px;
            line-height: 1.8;
        }

        .video-container {
            margin: 40px 0;
            text-align: center;
        }

        .bonuses-section {
            background: white;
            padding: 40px;
            border-radius: 15px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.1);
            margin-bottom: 40px;
        }

        .bonuses-title {
            font-family: '{{.HeadingFont}}', sans-serif;
            font-size: 2rem;
            color: {{.PrimaryColor}};
            text-align: center;
            margin-bottom: 30px;
        }

        .bonuses-grid {
            display: grid;
            gap: 20px;
        }

        .bonus-item {
            display: flex;
            align-items: flex-start;
            padding: 20px;
            background: {{.PrimaryColor}}10;
            border-radius: 10px;
            border-left: 4px solid {{.PrimaryColor}};
        }

        .bonus-icon {
            width: 40px;
            height: 40px;
            background: {{.PrimaryColor}};
            border-radius: 50%;
            display: flex;
            align-items: center;
            justify-content: center;
            margin-right: 15px;
            flex-shrink: 0;
            font-size: 1.2rem;
        }

        .bonus-content h4 {
            font-family: '{{.HeadingFont}}', sans-serif;
            font-size: 1.2rem;
            color: {{.PrimaryColor}};
            margin-bottom: 5px;
        }

        .bonus-type {
            font-size: 0.9rem;
            color: {{.SecondaryColor}};
            font-weight: 500;
            margin-bottom: 8px;
        }

        .cta-section {
            text-align: center;
            margin-top: 40px;
        }

        .cta-button {
            display: inline-block;
            background: linear-gradient(135deg, {{.PrimaryColor}} 0%, {{.SecondaryColor}} 100%);
            color: white;
            padding: 18px 40px;
            font-size: 1.2rem;
            font-weight: 600;
            text-decoration: none;
            border-radius: 50px;
            margin: 10px;
            transition: transform 0.3s ease, box-shadow 0.3s ease;
            box-shadow: 0 5px 15px rgba(0,0,0,0.2);
        }

        .cta-button:hover {
            transform: translateY(-2px);
            box-shadow: 0 8px 25px rgba(0,0,0,0.3);
        }

        @media (max-width: 768px) {
            .headline {
                font-size: 2rem;
            }

            .content,
            .bonuses-section {
                padding: 25px;
            }

            .container {
                padding: 20px 15px;
            }

            .hero-video-container {
                padding: 15px;
            }

            .cta-button {
                display: block;
                margin: 10px 0;
            }
        }
{{if .DemoBanner}}
        .demo-banner {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 15px;
            text-align: center;
            font-size: 14px;
            position: fixed;
            top: 0;
            left: 0;
            right: 0;
            z-index: 1000;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }

        .demo-banner a {
            color: white;
            text-decoration: underline;
        }

        .container {
            margin-top: 60px;
        }
{{end}}    </style>
</head>
<body>
{{if .DemoBanner}}    <div class="demo-banner">
        🚀 This is a demo bridge page created with Bridge Page Builder -
        <a href="#" onclick="window.parent.postMessage('close-preview', '*')">Create your own</a>
    </div>

{{end}}    <div class="container">
        <div class="header">
            <h1 class="headline">{{.Headline}}</h1>
            <p class="subheadline">{{.Subheadline}}</p>
        </div>
{{if .HeroVideo}}
        <div class="hero-video-container">
            <div class="video-wrapper">
                {{.HeroVideo}}
            </div>
        </div>
{{end}}
        <div class="content">
{{range .Paragraphs}}            <p class="paragraph">{{.}}</p>
{{end}}{{if .AdditionalVideo}}
            <div class="video-container">
                <div class="video-wrapper">
                    {{.AdditionalVideo}}
                </div>
            </div>
{{end}}        </div>
{{if .Bonuses}}
        <div class="bonuses-section">
            <h2 class="bonuses-title">🎁 Exclusive Bonuses</h2>
            <div class="bonuses-grid">
{{range .Bonuses}}                <div class="bonus-item">
                    <div class="bonus-icon">🎁</div>
                    <div class="bonus-content">
                        <h4>{{.Title}}</h4>
                        <div class="bonus-type">{{.Type}}</div>
                        <p>{{.Description}}</p>
                    </div>
                </div>
{{end}}            </div>
        </div>
{{end}}
        <div class="cta-section">
{{range .CTAButtons}}            <a href="{{$.AffiliateLink}}" class="cta-button" onclick="trackConversion('{{$.PageID}}', 'cta_click', '{{.}}')">{{.}} →</a>
{{end}}        </div>
    </div>

    <script>
        document.querySelectorAll('a[href^="#"]').forEach(function (anchor) {
            anchor.addEventListener('click', function (e) {
                e.preventDefault();
                var target = document.querySelector(this.getAttribute('href'));
                if (target) {
                    target.scrollIntoView({ behavior: 'smooth' });
                }
            });
        });
    </script>
</body>
</html>
`
